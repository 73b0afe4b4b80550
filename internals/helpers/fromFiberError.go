package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/constants"
)

// FromFiberError is the app-wide Fiber ErrorHandler.
// *fiber.Error keeps its code and message, *FieldError becomes 422,
// anything else is logged and hidden behind a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return ValidationError(c, fieldErr)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, constants.ErrInternal)
}
