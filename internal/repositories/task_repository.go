package repositories

import "todonest/internal/models"

// TaskRepository defines the interface for task data access. Every operation is
// scoped by the owning user's id.
type TaskRepository interface {
	Create(task *models.Task) error
	GetByID(userID, id uint) (*models.Task, error)
	Update(userID, id uint, fields map[string]interface{}) (*models.Task, error)
	Delete(userID, id uint) error
}
