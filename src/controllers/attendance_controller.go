package controllers

import (
	"time"

	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services"
	"Backend-EduSync/src/services/attendance"
	"Backend-EduSync/src/services/classes"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarkAttendance godoc
// @Summary Mark daily attendance
// @Description Batch-mark attendance for a class/section on one date. Entries
// @Description for unknown students or with invalid statuses are skipped and
// @Description reported, not rejected wholesale.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "classId, sectionId, date and entries"
// @Success 200 {object} attendance.MarkDailyResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/daily [post]
func MarkAttendance(c *fiber.Ctx) error {
	var req struct {
		ClassID   string                 `json:"classId" validate:"required"`
		SectionID string                 `json:"sectionId" validate:"required"`
		Date      string                 `json:"date" validate:"required"`
		Entries   []attendance.MarkEntry `json:"entries" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid classId")
	}
	sectionID, err := primitive.ObjectIDFromHex(req.SectionID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sectionId")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
	}

	userID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	// teachers may only mark sections they are assigned to
	markedBy := userID
	if role, _ := c.Locals("role").(string); role == models.RoleTeacher {
		user, err := services.GetUserByID(c.Context(), userID)
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		assigned, err := classes.TeacherAssigned(c.Context(), user.RefID, classID, sectionID)
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		if !assigned {
			return utils.HandleError(c, fiber.StatusForbidden, "You are not assigned to this class/section")
		}
		markedBy = user.RefID
	}

	result, err := attendanceService.MarkDaily(c.Context(), classID, sectionID, date, markedBy, req.Entries)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// GetDailyAttendance godoc
// @Summary Daily attendance register
// @Description One row per enrolled student; unmarked students show as ABSENT
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param classId query string true "Class ID"
// @Param sectionId query string true "Section ID"
// @Param date query string true "Date YYYY-MM-DD"
// @Success 200 {array} attendance.DailyView
// @Router /attendance/daily [get]
func GetDailyAttendance(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Query("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid classId")
	}
	sectionID, err := primitive.ObjectIDFromHex(c.Query("sectionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sectionId")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
	}

	views, err := attendanceService.GetDaily(c.Context(), classID, sectionID, date)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(views)
}

// GetMonthlyAttendance godoc
// @Summary Monthly attendance summaries of a student
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param year query int true "Calendar year"
// @Success 200 {array} models.MonthlyAttendanceSummary
// @Router /attendance/monthly/{studentId} [get]
func GetMonthlyAttendance(c *fiber.Ctx) error {
	studentID, err := objectIDParam(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	year := c.QueryInt("year", time.Now().Year())

	summaries, err := attendanceService.GetMonthly(c.Context(), studentID, year)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(summaries)
}

// GetAttendanceStats godoc
// @Summary Class attendance statistics of one month
// @Description Working days, average attendance and a per-day breakdown
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param classId query string true "Class ID"
// @Param sectionId query string true "Section ID"
// @Param month query int true "Month 1-12"
// @Param year query int true "Year"
// @Success 200 {object} attendance.Stats
// @Router /attendance/stats [get]
func GetAttendanceStats(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Query("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid classId")
	}
	sectionID, err := primitive.ObjectIDFromHex(c.Query("sectionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sectionId")
	}
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	stats, err := attendanceService.GetStats(c.Context(), classID, sectionID, month, year)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(stats)
}
