package controllers

import (
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/classes"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateClass godoc
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param class body models.Class true "Class to create"
// @Success 201 {object} models.Class
// @Router /classes [post]
func CreateClass(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := classes.CreateClass(c.Context(), &class); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}

// GetClasses godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Class
// @Router /classes [get]
func GetClasses(c *fiber.Ctx) error {
	list, err := classes.GetClasses(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// GetClassByID godoc
// @Summary Get one class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Failure 404 {object} models.ErrorResponse
// @Router /classes/{id} [get]
func GetClassByID(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	class, err := classes.GetClassByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(class)
}

// CreateSection godoc
// @Summary Create a section in a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param section body models.Section true "Section to create"
// @Success 201 {object} models.Section
// @Router /classes/{id}/sections [post]
func CreateSection(c *fiber.Ctx) error {
	classID, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var sec models.Section
	if err := c.BodyParser(&sec); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	sec.ClassID = classID
	if err := classes.CreateSection(c.Context(), &sec); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sec)
}

// GetSections godoc
// @Summary List the sections of a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {array} models.Section
// @Router /classes/{id}/sections [get]
func GetSections(c *fiber.Ctx) error {
	classID, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	list, err := classes.GetSections(c.Context(), classID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// AssignTeachers godoc
// @Summary Assign the class teacher and subject teachers of a section
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Success 200 {object} map[string]interface{}
// @Router /sections/{sectionId}/teachers [put]
func AssignTeachers(c *fiber.Ctx) error {
	sectionID, err := objectIDParam(c, "sectionId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sectionId")
	}

	var req struct {
		ClassTeacherID string   `json:"classTeacherId" validate:"required"`
		TeacherIDs     []string `json:"teacherIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	classTeacherID, err := primitive.ObjectIDFromHex(req.ClassTeacherID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid classTeacherId")
	}
	teacherIDs := make([]primitive.ObjectID, 0, len(req.TeacherIDs))
	for _, raw := range req.TeacherIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid teacherIds entry "+raw)
		}
		teacherIDs = append(teacherIDs, id)
	}

	if err := classes.AssignTeachers(c.Context(), sectionID, classTeacherID, teacherIDs); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teachers assigned"})
}

// CreateSubject godoc
// @Summary Create a subject in a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param subject body models.Subject true "Subject to create"
// @Success 201 {object} models.Subject
// @Router /classes/{id}/subjects [post]
func CreateSubject(c *fiber.Ctx) error {
	classID, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var sub models.Subject
	if err := c.BodyParser(&sub); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	sub.ClassID = classID
	if err := classes.CreateSubject(c.Context(), &sub); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// GetSubjects godoc
// @Summary List the subjects of a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {array} models.Subject
// @Router /classes/{id}/subjects [get]
func GetSubjects(c *fiber.Ctx) error {
	classID, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	list, err := classes.GetSubjects(c.Context(), classID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}
