package auth

import "errors"

var (
	ErrMissingFields      = errors.New("Name, email, password, and phone are required")
	ErrMissingCredentials = errors.New("Email and password are required")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrInvalidRole        = errors.New("Role must be either admin or customer")
	ErrEmailExists        = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)
