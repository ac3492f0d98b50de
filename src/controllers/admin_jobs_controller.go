package controllers

import (
	"log"
	"time"

	"Backend-EduSync/src/database"
	"Backend-EduSync/src/jobs"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// EnqueueAttendanceRecompute godoc
// @Summary Queue a monthly attendance rollup rebuild for one class/section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body jobs.RecomputeAttendancePayload true "classId, sectionId and any date of the target month"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/jobs/attendance-recompute [post]
func EnqueueAttendanceRecompute(c *fiber.Ctx) error {
	var req struct {
		ClassID   string `json:"classId" validate:"required"`
		SectionID string `json:"sectionId" validate:"required"`
		Date      string `json:"date" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	if database.AsynqClient == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "Job queue unavailable")
	}

	task, err := jobs.NewRecomputeAttendanceTask(jobs.RecomputeAttendancePayload{
		ClassID:   req.ClassID,
		SectionID: req.SectionID,
		Date:      req.Date,
	})
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("❌ Failed to enqueue attendance recompute task:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to queue recompute")
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Recompute queued"})
}

// EnqueueReportCleanup godoc
// @Summary Queue deletion of report files older than the retention window
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body jobs.CleanupReportsPayload false "maxAgeDays, defaults to 90"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/jobs/report-cleanup [post]
func EnqueueReportCleanup(c *fiber.Ctx) error {
	var req struct {
		MaxAgeDays int `json:"maxAgeDays"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
		}
	}
	if req.MaxAgeDays < 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "maxAgeDays cannot be negative")
	}
	if database.AsynqClient == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "Job queue unavailable")
	}

	task, err := jobs.NewCleanupReportsTask(req.MaxAgeDays)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("❌ Failed to enqueue report cleanup task:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to queue cleanup")
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Cleanup queued"})
}
