package controllers

import (
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/students"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body models.Student true "Student to create"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Router /students [post]
func CreateStudent(c *fiber.Ctx) error {
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := students.Create(c.Context(), &st); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// GetStudents godoc
// @Summary List students
// @Description Paginated, filterable by class/section and a name/code search
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name or code search"
// @Param classId query string false "Class ID"
// @Param sectionId query string false "Section ID"
// @Success 200 {object} models.PaginatedResponse
// @Router /students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	classID, err := objectIDQuery(c, "classId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid classId")
	}
	sectionID, err := objectIDQuery(c, "sectionId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sectionId")
	}

	page, err := students.GetAll(c.Context(), params, classID, sectionID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(page)
}

// GetStudentByID godoc
// @Summary Get one student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id} [get]
func GetStudentByID(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	st, err := students.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(st)
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param student body models.Student true "Updated fields"
// @Success 200 {object} map[string]interface{}
// @Router /students/{id} [put]
func UpdateStudent(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := students.Update(c.Context(), id, &st); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// DeactivateStudent godoc
// @Summary Deactivate a student
// @Description Soft delete; attendance and result history is kept
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Router /students/{id} [delete]
func DeactivateStudent(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := students.Deactivate(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deactivated"})
}
