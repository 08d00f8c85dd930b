package repositories

import (
	"errors"
	"fmt"

	"todonest/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. Email is expected to already be lowercased by the
// caller.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by exact username match.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Emails are stored lowercase, so passing
// a lowercased value makes the match case-insensitive.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// UpdateProfile applies the given column values to an existing user. Only the
// columns present in fields are touched.
func (r *GORMUserRepository) UpdateProfile(id uint, fields map[string]interface{}) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to load user %d for update: %w", id, err)
	}
	if err := r.db.Model(&user).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update profile for user %d: %w", id, err)
	}
	return nil
}

// UpdateAvatar replaces the stored avatar bytes for an existing user.
func (r *GORMUserRepository) UpdateAvatar(id uint, avatar []byte) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to load user %d for avatar update: %w", id, err)
	}
	if err := r.db.Model(&user).Update("avatar", avatar).Error; err != nil {
		return fmt.Errorf("failed to update avatar for user %d: %w", id, err)
	}
	return nil
}
