package repositories

import (
	"errors"
	"fmt"

	"todonest/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// Create inserts a new category for its owning user.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category owned by the given user.
func (r *GORMCategoryRepository) GetByID(userID, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}

// Rename updates the name of a category owned by the given user and returns
// the updated row.
func (r *GORMCategoryRepository) Rename(userID, id uint, name string) (*models.Category, error) {
	category, err := r.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(category).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to rename category %d: %w", id, err)
	}
	return category, nil
}

// Delete removes a category and every task under it in a single transaction,
// so a failure leaves neither orphaned tasks nor a half-deleted category.
func (r *GORMCategoryRepository) Delete(userID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ? AND user_id = ?", id, userID).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks for category %d: %w", id, err)
		}
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("category with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// ListWithTasks returns the user's categories in insertion order, each with its
// tasks in insertion order. A category without tasks carries an empty (non-nil)
// task slice so it serializes as [].
func (r *GORMCategoryRepository) ListWithTasks(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("user_id = ?", userID).
		Order("id").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id")
		}).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for user %d: %w", userID, err)
	}
	for i := range categories {
		if categories[i].Tasks == nil {
			categories[i].Tasks = []models.Task{}
		}
	}
	return categories, nil
}
