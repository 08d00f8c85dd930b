package services

import (
	"fmt"
	"log"

	"todonest/internal/models"
	"todonest/internal/repositories"
	"todonest/pkg/events"
)

// TodoService handles business logic for the category/task hierarchy. Every
// operation is scoped by the authenticated user's id, including task updates
// and completion toggles.
type TodoService struct {
	categoryRepo repositories.CategoryRepository
	taskRepo     repositories.TaskRepository
	publisher    events.Publisher // optional, may be nil
}

// NewTodoService creates a new TodoService. publisher may be nil, in which
// case no domain events are emitted.
func NewTodoService(categoryRepo repositories.CategoryRepository, taskRepo repositories.TaskRepository, publisher events.Publisher) *TodoService {
	return &TodoService{
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
		publisher:    publisher,
	}
}

// CreateCategory creates a new category owned by the user.
func (s *TodoService) CreateCategory(userID uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrValidation)
	}
	category := &models.Category{
		Name:   name,
		UserID: userID,
		Tasks:  []models.Task{},
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// RenameCategory renames a category owned by the user.
func (s *TodoService) RenameCategory(userID, categoryID uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrValidation)
	}
	category, err := s.categoryRepo.Rename(userID, categoryID, name)
	if err != nil {
		return nil, err
	}
	if category.Tasks == nil {
		category.Tasks = []models.Task{}
	}
	return category, nil
}

// DeleteCategory removes a category owned by the user together with all of its
// tasks.
func (s *TodoService) DeleteCategory(userID, categoryID uint) error {
	if err := s.categoryRepo.Delete(userID, categoryID); err != nil {
		return err
	}
	s.publish(events.TypeCategoryDeleted, map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
	})
	return nil
}

// ListCategories returns the user's categories with their nested tasks.
func (s *TodoService) ListCategories(userID uint) ([]models.Category, error) {
	return s.categoryRepo.ListWithTasks(userID)
}

// CreateTask creates a task under one of the user's categories. The category
// must belong to the user; a foreign category id reads as not found.
func (s *TodoService) CreateTask(userID, categoryID uint, title, description string) (*models.Task, error) {
	if categoryID == 0 || title == "" {
		return nil, fmt.Errorf("category ID and title are required: %w", ErrValidation)
	}
	if _, err := s.categoryRepo.GetByID(userID, categoryID); err != nil {
		return nil, err
	}
	task := &models.Task{
		CategoryID:  categoryID,
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies any subset of title, description, and completed to a task
// owned by the user. Nil values mean "leave unchanged"; supplying none is a
// validation error.
func (s *TodoService) UpdateTask(userID, taskID uint, title, description *string, completed *bool) (*models.Task, error) {
	fields := map[string]interface{}{}
	if title != nil {
		fields["title"] = *title
	}
	if description != nil {
		fields["description"] = *description
	}
	if completed != nil {
		fields["completed"] = *completed
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("at least one of title, description, or completed is required: %w", ErrValidation)
	}
	return s.taskRepo.Update(userID, taskID, fields)
}

// SetTaskCompletion sets the completion flag of a task owned by the user.
func (s *TodoService) SetTaskCompletion(userID, taskID uint, completed bool) (*models.Task, error) {
	task, err := s.taskRepo.Update(userID, taskID, map[string]interface{}{"completed": completed})
	if err != nil {
		return nil, err
	}
	if completed {
		s.publish(events.TypeTaskCompleted, map[string]interface{}{
			"user_id": userID,
			"task_id": task.ID,
			"title":   task.Title,
		})
	}
	return task, nil
}

// DeleteTask removes a single task owned by the user.
func (s *TodoService) DeleteTask(userID, taskID uint) error {
	return s.taskRepo.Delete(userID, taskID)
}

// publish emits a domain event best-effort; a broker failure is logged and
// never fails the request.
func (s *TodoService) publish(eventType string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, payload); err != nil {
		log.Printf("failed to publish %s event: %v", eventType, err)
	}
}
