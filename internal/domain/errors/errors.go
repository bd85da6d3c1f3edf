package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
