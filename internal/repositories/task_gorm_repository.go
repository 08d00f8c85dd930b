package repositories

import (
	"errors"
	"fmt"

	"todonest/internal/models"

	"gorm.io/gorm"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{
		db: db,
	}
}

// Create inserts a new task under its category and owning user.
func (r *GORMTaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetByID retrieves a task owned by the given user.
func (r *GORMTaskRepository) GetByID(userID, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// Update applies the given column values to a task owned by the given user and
// returns the refreshed row. Columns absent from fields are left untouched.
func (r *GORMTaskRepository) Update(userID, id uint, fields map[string]interface{}) (*models.Task, error) {
	task, err := r.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(task).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	var updated models.Task
	if err := r.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload task %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a task owned by the given user.
func (r *GORMTaskRepository) Delete(userID, id uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
