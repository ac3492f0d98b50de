package controllers

import (
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services"
	"Backend-EduSync/src/services/leaves"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ApplyLeave godoc
// @Summary File a leave application
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leave body models.LeaveApplication true "Leave application"
// @Success 201 {object} models.LeaveApplication
// @Router /leaves [post]
func ApplyLeave(c *fiber.Ctx) error {
	var l models.LeaveApplication
	if err := c.BodyParser(&l); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	// applicant identity comes from the token, not the body
	userID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	user, err := services.GetUserByID(c.Context(), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	l.ApplicantID = user.RefID
	l.ApplicantRole = user.Role

	if err := leaves.Apply(c.Context(), &l); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

// ReviewLeave godoc
// @Summary Approve or reject a pending leave application
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave application ID"
// @Success 200 {object} models.LeaveApplication
// @Failure 400 {object} models.ErrorResponse
// @Router /leaves/{id}/review [post]
func ReviewLeave(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req struct {
		Approve bool   `json:"approve"`
		Remarks string `json:"remarks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	reviewerID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	l, err := leaves.Review(c.Context(), id, reviewerID, req.Approve, req.Remarks)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(l)
}

// GetMyLeaves godoc
// @Summary The caller's own leave applications, newest first
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveApplication
// @Router /leaves/mine [get]
func GetMyLeaves(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	user, err := services.GetUserByID(c.Context(), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ls, err := leaves.ListByApplicant(c.Context(), user.RefID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(ls)
}

// GetPendingLeaves godoc
// @Summary Leave applications awaiting review
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveApplication
// @Router /leaves/pending [get]
func GetPendingLeaves(c *fiber.Ctx) error {
	ls, err := leaves.ListPending(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(ls)
}
