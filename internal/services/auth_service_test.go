package services_test

import (
	"fmt"
	"testing"
	"time"

	"todonest/internal/models"
	"todonest/internal/repositories"
	"todonest/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(id uint, avatar []byte) error {
	args := m.Called(id, avatar)
	return args.Error(0)
}

func notFoundErr() error {
	return fmt.Errorf("no such row: %w", repositories.ErrNotFound)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Email is lowercased before the uniqueness checks and storage.
	mockRepo.On("GetByEmail", "a@b.com").Return(nil, notFoundErr()).Once()
	mockRepo.On("GetByUsername", "ab").Return(nil, notFoundErr()).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.Register("A B", "ab", "A@B.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	_, err := authService.Register("", "ab", "a@b.com", "secret")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = authService.Register("A B", "ab", "a@b.com", "")
	assert.ErrorIs(t, err, services.ErrValidation)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Duplicate email is rejected regardless of case and regardless of the
	// username being new.
	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: 1}, nil).Once()

	_, err := authService.Register("A B", "freshname", "TAKEN@example.com", "secret")
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByEmail", "fresh@example.com").Return(nil, notFoundErr()).Once()
	mockRepo.On("GetByUsername", "taken").Return(&models.User{ID: 1}, nil).Once()

	_, err := authService.Register("A B", "taken", "fresh@example.com", "secret")
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       42,
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Login by username is an exact match.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, userID, err := authService.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(42), userID)

	// An identifier containing "@" is looked up as a lowercased email.
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	_, userID, err = authService.Login("TEST@Example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// Wrong password and unknown user collapse to the same error.
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, _, err = authService.Login("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.On("GetByUsername", "nobody").Return(nil, notFoundErr()).Once()
	_, _, err = authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	token, err := authService.GenerateToken(7)
	assert.NoError(t, err)

	userID, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestAuthService_ValidateTokenFailures(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Garbage token.
	_, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Token signed with a different secret.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forgedString, _ := forged.SignedString([]byte("some_other_secret"))
	_, err = authService.ValidateToken(forgedString)
	assert.Error(t, err)

	// Expired token signed with the right secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)
}
