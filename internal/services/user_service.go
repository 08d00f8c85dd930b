package services

import (
	"fmt"
	"strings"

	"todonest/internal/models"
	"todonest/internal/repositories"
)

// UserService handles profile reads and updates for a single user.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUser returns the public profile for a user id. The model's JSON encoding
// already hides the password hash and base64-encodes the avatar.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile applies any subset of full name, username, and email. Nil or
// empty values are treated as absent and left untouched; supplying nothing at
// all is a validation error. Email keeps its lowercase normalization on update.
func (s *UserService) UpdateProfile(id uint, fullName, username, email *string) error {
	fields := map[string]interface{}{}
	if fullName != nil && *fullName != "" {
		fields["full_name"] = *fullName
	}
	if username != nil && *username != "" {
		fields["username"] = *username
	}
	if email != nil && *email != "" {
		fields["email"] = strings.ToLower(*email)
	}
	if len(fields) == 0 {
		return fmt.Errorf("at least one field is required: %w", ErrValidation)
	}
	return s.userRepo.UpdateProfile(id, fields)
}

// UpdateAvatar stores the uploaded avatar bytes for the user.
func (s *UserService) UpdateAvatar(id uint, avatar []byte) error {
	if len(avatar) == 0 {
		return fmt.Errorf("no avatar uploaded: %w", ErrValidation)
	}
	return s.userRepo.UpdateAvatar(id, avatar)
}
