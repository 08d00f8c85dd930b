package handlers

import (
	"fmt"
	"io"
	"log"

	"todonest/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the user profile and avatar. All of
// its routes sit behind the auth middleware.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes with the Fiber router.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/user/:id", h.HandleGetUser)
	router.Put("/user/:id", h.HandleUpdateProfile)
	router.Post("/user/:id/avatar", h.HandleUpdateAvatar)
}

// HandleGetUser returns the public profile for a user id.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// UpdateProfileRequest represents the request body for a partial profile
// update.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// HandleUpdateProfile applies the supplied subset of profile fields.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.userService.UpdateProfile(id, req.FullName, req.Username, req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// HandleUpdateAvatar stores the uploaded avatar image from the multipart
// "avatar" field.
func (h *UserHandler) HandleUpdateAvatar(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No avatar uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("failed to open uploaded avatar: %w", err))
	}
	defer file.Close()

	avatar, err := io.ReadAll(file)
	if err != nil {
		return respondError(c, fmt.Errorf("failed to read uploaded avatar: %w", err))
	}

	if err := h.userService.UpdateAvatar(id, avatar); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Avatar updated successfully",
	})
}
