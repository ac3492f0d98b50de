// Package errs defines the error taxonomy shared by all services. Services
// wrap these sentinels with context; controllers translate them into HTTP
// status codes and never the other way around.
package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate")
	ErrLocked     = errors.New("locked")
	ErrForbidden  = errors.New("forbidden")
)

// NotFound wraps ErrNotFound naming the missing entity.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// Validation wraps ErrValidation with a caller-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

// Duplicate wraps ErrDuplicate naming the conflicting entity.
func Duplicate(entity string) error {
	return fmt.Errorf("%s already exists: %w", entity, ErrDuplicate)
}

// HTTPStatus maps a service error onto an HTTP status code. Unknown errors
// map to 500 and should be logged by the caller, not echoed to the client.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, ErrLocked):
		return fiber.StatusConflict
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
