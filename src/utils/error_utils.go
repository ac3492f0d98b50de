// error_utils.go
package utils

import (
	"log"

	"Backend-EduSync/src/errs"
	"Backend-EduSync/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError translates a typed service error into an HTTP response.
// Internal errors are logged and answered with a generic message.
func HandleServiceError(c *fiber.Ctx, err error) error {
	status := errs.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Println("❌ internal error:", err)
		return HandleError(c, status, "internal server error")
	}
	return HandleError(c, status, err.Error())
}
