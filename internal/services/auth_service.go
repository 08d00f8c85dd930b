package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todonest/internal/models"
	"todonest/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, and bearer token issue/verify. The
// signing secret and token lifetime are fixed at construction.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. Tokens expire one hour after issue.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Hour,
	}
}

// Register creates a new account. The email is normalized to lowercase before
// the uniqueness check and storage, so email uniqueness is case-insensitive
// while username uniqueness is exact.
func (s *AuthService) Register(fullName, username, email, password string) (*models.User, error) {
	if fullName == "" || username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required: %w", ErrValidation)
	}
	email = strings.ToLower(email)

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("email is already registered: %w", ErrConflict)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, fmt.Errorf("username is already taken: %w", ErrConflict)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates by email or username and returns a signed token plus the
// user id. An identifier containing "@" is treated as an email and matched
// case-insensitively; anything else is an exact username match. Every failure
// collapses to ErrInvalidCredentials.
func (s *AuthService) Login(identifier, password string) (string, uint, error) {
	user, err := s.findByIdentifier(identifier)
	if err != nil {
		return "", 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return "", 0, err
	}
	return token, user.ID, nil
}

func (s *AuthService) findByIdentifier(identifier string) (*models.User, error) {
	if strings.Contains(identifier, "@") {
		return s.userRepo.GetByEmail(strings.ToLower(identifier))
	}
	return s.userRepo.GetByUsername(identifier)
}

// GenerateToken issues an HS256 JWT binding the user id, valid for the
// configured lifetime.
func (s *AuthService) GenerateToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks signature and expiry together and returns the bound
// user id. Malformed, forged, and expired tokens are all the same failure to
// the caller.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid token: missing user_id claim")
	}
	return uint(userID), nil
}
