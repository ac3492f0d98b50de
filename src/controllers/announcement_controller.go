package controllers

import (
	"time"

	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/announcements"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateAnnouncement godoc
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body models.Announcement true "Announcement to create"
// @Success 201 {object} models.Announcement
// @Router /announcements [post]
func CreateAnnouncement(c *fiber.Ctx) error {
	var a models.Announcement
	if err := c.BodyParser(&a); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if userID, err := callerID(c); err == nil {
		a.CreatedBy = userID
	}
	if err := announcements.Create(c.Context(), &a); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// GetActiveAnnouncements godoc
// @Summary Announcements active today for the caller's role
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param classId query string false "Include class announcements for this class"
// @Success 200 {array} models.Announcement
// @Router /announcements [get]
func GetActiveAnnouncements(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	classID, err := objectIDQuery(c, "classId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid classId")
	}

	list, err := announcements.ListActive(c.Context(), role, classID, time.Now().UTC())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// GetAnnouncementByID godoc
// @Summary Get one announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} models.Announcement
// @Failure 404 {object} models.ErrorResponse
// @Router /announcements/{id} [get]
func GetAnnouncementByID(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	a, err := announcements.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(a)
}

// DeleteAnnouncement godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} map[string]interface{}
// @Router /announcements/{id} [delete]
func DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := announcements.Delete(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Announcement deleted"})
}
