package controllers

import (
	"Backend-EduSync/src/services/results"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AddSubjectResult godoc
// @Summary Record subject marks
// @Description Stores the marks of one subject for one term and recomputes
// @Description the student's overall result. Re-adding the same
// @Description (student, subject, year, term) is a conflict.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body results.AddSubjectResultInput true "Subject marks"
// @Success 201 {object} models.SubjectResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /results/subjects [post]
func AddSubjectResult(c *fiber.Ctx) error {
	var in results.AddSubjectResultInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	r, err := resultService.AddSubjectResult(c.Context(), in)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// UpdateSubjectResult godoc
// @Summary Correct subject marks
// @Description Locked results are rejected with 409
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject result ID"
// @Param body body results.UpdateMarksInput true "Corrected marks"
// @Success 200 {object} models.SubjectResult
// @Failure 409 {object} models.ErrorResponse
// @Router /results/subjects/{id} [put]
func UpdateSubjectResult(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var in results.UpdateMarksInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	r, err := resultService.UpdateSubjectResult(c.Context(), id, in)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(r)
}

// LockSubjectResult godoc
// @Summary Lock a subject result against further updates
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject result ID"
// @Success 200 {object} map[string]interface{}
// @Router /results/subjects/{id}/lock [post]
func LockSubjectResult(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := resultService.LockSubjectResult(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Result locked"})
}

// GetSubjectResults godoc
// @Summary Subject results of a student's term
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param academicYear query string true "Academic year"
// @Param term query string true "Term"
// @Success 200 {array} models.SubjectResult
// @Router /results/subjects/student/{studentId} [get]
func GetSubjectResults(c *fiber.Ctx) error {
	studentID, err := objectIDParam(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	academicYear, term := c.Query("academicYear"), c.Query("term")
	if academicYear == "" || term == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "academicYear and term are required")
	}

	rs, err := resultService.GetSubjectResults(c.Context(), studentID, academicYear, term)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(rs)
}

// CalculateOverallResult godoc
// @Summary Recompute a student's overall result
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param academicYear query string true "Academic year"
// @Param term query string true "Term"
// @Success 200 {object} models.OverallResult
// @Failure 404 {object} models.ErrorResponse
// @Router /results/overall/{studentId}/calculate [post]
func CalculateOverallResult(c *fiber.Ctx) error {
	studentID, err := objectIDParam(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	academicYear, term := c.Query("academicYear"), c.Query("term")
	if academicYear == "" || term == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "academicYear and term are required")
	}

	overall, err := resultService.CalculateOverallResult(c.Context(), studentID, academicYear, term)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(overall)
}

// GetOverallResult godoc
// @Summary Stored overall result of a student's term
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param academicYear query string true "Academic year"
// @Param term query string true "Term"
// @Success 200 {object} models.OverallResult
// @Failure 404 {object} models.ErrorResponse
// @Router /results/overall/{studentId} [get]
func GetOverallResult(c *fiber.Ctx) error {
	studentID, err := objectIDParam(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	academicYear, term := c.Query("academicYear"), c.Query("term")
	if academicYear == "" || term == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "academicYear and term are required")
	}

	overall, err := resultService.GetOverallResult(c.Context(), studentID, academicYear, term)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(overall)
}
