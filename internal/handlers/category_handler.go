package handlers

import (
	"log"

	"todonest/internal/middleware"
	"todonest/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for task categories. All of its routes
// sit behind the auth middleware and operate on the authenticated user's rows
// only.
type CategoryHandler struct {
	todoService *services.TodoService
	validate    *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(todoService *services.TodoService) *CategoryHandler {
	return &CategoryHandler{
		todoService: todoService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/category", h.HandleCreate)
	router.Put("/category/:id", h.HandleRename)
	router.Delete("/category/:id", h.HandleDelete)
	router.Get("/categories", h.HandleList)
}

// CategoryRequest represents the request body for creating or renaming a
// category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// HandleCreate creates a new category for the authenticated user.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	category, err := h.todoService.CreateCategory(middleware.UserID(c), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleRename renames one of the authenticated user's categories.
func (h *CategoryHandler) HandleRename(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category ID is required",
		})
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	category, err := h.todoService.RenameCategory(middleware.UserID(c), id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleDelete removes a category and all of its tasks.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category ID is required",
		})
	}

	if err := h.todoService.DeleteCategory(middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Category and associated tasks deleted successfully",
	})
}

// HandleList returns all of the user's categories with their nested tasks.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.todoService.ListCategories(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}
