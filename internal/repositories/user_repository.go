package repositories

import "todonest/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateProfile(id uint, fields map[string]interface{}) error
	UpdateAvatar(id uint, avatar []byte) error
}
