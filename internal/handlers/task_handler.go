package handlers

import (
	"log"

	"todonest/internal/middleware"
	"todonest/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for tasks. All of its routes sit behind
// the auth middleware and operate on the authenticated user's rows only.
type TaskHandler struct {
	todoService *services.TodoService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(todoService *services.TodoService) *TaskHandler {
	return &TaskHandler{
		todoService: todoService,
	}
}

// RegisterRoutes registers the task routes with the Fiber router.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/task", h.HandleCreate)
	router.Put("/task/:id", h.HandleUpdate)
	router.Put("/task/:id/completion", h.HandleSetCompletion)
	router.Delete("/task/:id", h.HandleDelete)
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	CategoryID  uint   `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HandleCreate creates a task under one of the user's categories.
func (h *TaskHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing task body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.todoService.CreateTask(middleware.UserID(c), req.CategoryID, req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTaskRequest represents a partial task update; nil fields are left
// unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// HandleUpdate applies the supplied subset of title, description, and
// completed.
func (h *TaskHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Task ID is required",
		})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing task update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.todoService.UpdateTask(middleware.UserID(c), id, req.Title, req.Description, req.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// CompletionRequest represents the request body for toggling completion.
type CompletionRequest struct {
	Completed bool `json:"completed"`
}

// HandleSetCompletion sets the completion flag on a task.
func (h *TaskHandler) HandleSetCompletion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Task ID is required",
		})
	}

	var req CompletionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing completion body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.todoService.SetTaskCompletion(middleware.UserID(c), id, req.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// HandleDelete removes a single task.
func (h *TaskHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Task ID is required",
		})
	}

	if err := h.todoService.DeleteTask(middleware.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
	})
}
