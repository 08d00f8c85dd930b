package handlers

import (
	"errors"
	"log"

	"todonest/internal/repositories"
	"todonest/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service or repository error to its HTTP status with a
// JSON error body. Unexpected errors are logged and reduced to a generic 500
// message so no internal detail leaks.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred. Please try again.",
		})
	}
}

// parseIDParam reads a numeric :id route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
