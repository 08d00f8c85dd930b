package repositories

import "todonest/internal/models"

// CategoryRepository defines the interface for category data access. Every
// operation is scoped by the owning user's id.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(userID, id uint) (*models.Category, error)
	Rename(userID, id uint, name string) (*models.Category, error)
	Delete(userID, id uint) error
	ListWithTasks(userID uint) ([]models.Category, error)
}
