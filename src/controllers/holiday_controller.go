package controllers

import (
	"time"

	"Backend-EduSync/src/models"
	"Backend-EduSync/src/services/holidays"
	"Backend-EduSync/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateHoliday godoc
// @Summary Create a holiday
// @Description Recurring holidays take a recurrencePattern: YEARLY,
// @Description MONTHLY:<n>:<WD> or WEEKLY:<WD>
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param holiday body models.Holiday true "Holiday to create"
// @Success 201 {object} models.Holiday
// @Failure 400 {object} models.ErrorResponse
// @Router /holidays [post]
func CreateHoliday(c *fiber.Ctx) error {
	var h models.Holiday
	if err := c.BodyParser(&h); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := holidays.Create(c.Context(), &h); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h)
}

// GetHolidays godoc
// @Summary List holidays
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Holiday
// @Router /holidays [get]
func GetHolidays(c *fiber.Ctx) error {
	hs, err := holidays.GetAll(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(hs)
}

// UpdateHoliday godoc
// @Summary Update a holiday
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 200 {object} map[string]interface{}
// @Router /holidays/{id} [put]
func UpdateHoliday(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var h models.Holiday
	if err := c.BodyParser(&h); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := holidays.Update(c.Context(), id, &h); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Holiday updated"})
}

// DeleteHoliday godoc
// @Summary Delete a holiday
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 200 {object} map[string]interface{}
// @Router /holidays/{id} [delete]
func DeleteHoliday(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := holidays.Delete(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}

// GetHolidayCalendar godoc
// @Summary Expanded holiday calendar and working days of one month
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month 1-12"
// @Param year query int true "Year"
// @Success 200 {object} holidays.Calendar
// @Router /holidays/calendar [get]
func GetHolidayCalendar(c *fiber.Ctx) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	cal, err := holidays.MonthCalendar(c.Context(), month, year)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(cal)
}
