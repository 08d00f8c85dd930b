package middleware

import (
	"strings"

	"todonest/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware enforcing bearer token auth. A missing or
// malformed Authorization header yields 401, a token that fails verification
// (forged, malformed, or expired) yields 403; both with empty bodies. On
// success the verified user id is stored in the request locals under "user_id".
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.SendStatus(fiber.StatusForbidden)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id placed in the locals by
// AuthRequired. It is zero when the middleware did not run.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}
