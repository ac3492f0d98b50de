package controllers

import (
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/exams"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateExamSchedule godoc
// @Summary Schedule an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body models.ExamSchedule true "Exam schedule"
// @Success 201 {object} models.ExamSchedule
// @Router /exams [post]
func CreateExamSchedule(c *fiber.Ctx) error {
	var e models.ExamSchedule
	if err := c.BodyParser(&e); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := exams.Create(c.Context(), &e); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// GetExamSchedules godoc
// @Summary Exam schedule of a term, ordered by date
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param academicYear query string true "Academic year"
// @Param term query string true "Term"
// @Success 200 {array} models.ExamSchedule
// @Router /exams [get]
func GetExamSchedules(c *fiber.Ctx) error {
	academicYear, term := c.Query("academicYear"), c.Query("term")
	if academicYear == "" || term == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "academicYear and term are required")
	}
	list, err := exams.ListByTerm(c.Context(), academicYear, term)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// DeleteExamSchedule godoc
// @Summary Delete an exam schedule
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam schedule ID"
// @Success 200 {object} map[string]interface{}
// @Router /exams/{id} [delete]
func DeleteExamSchedule(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := exams.Delete(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exam schedule deleted"})
}
