package controllers

import (
	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/fees"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateFeePayment godoc
// @Summary Record a fee payment
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body models.FeePayment true "Fee payment"
// @Success 201 {object} models.FeePayment
// @Router /fees [post]
func CreateFeePayment(c *fiber.Ctx) error {
	var p models.FeePayment
	if err := c.BodyParser(&p); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := fees.Create(c.Context(), &p); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// MarkFeePaid godoc
// @Summary Settle a pending fee payment
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee payment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /fees/{id}/pay [post]
func MarkFeePaid(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := fees.MarkPaid(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment settled"})
}

// GetStudentFees godoc
// @Summary A student's fee payments, newest first
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {array} models.FeePayment
// @Router /fees/student/{studentId} [get]
func GetStudentFees(c *fiber.Ctx) error {
	studentID, err := objectIDParam(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	payments, err := fees.ListByStudent(c.Context(), studentID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(payments)
}
