package services

import "errors"

// Sentinel errors for the service layer. Handlers map these to HTTP statuses
// with errors.Is; wrapped messages carry the human-readable detail.
var (
	// ErrValidation marks missing or invalid input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a duplicate unique field (username or email).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is the single outcome for any login failure, so a
	// caller cannot tell a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
