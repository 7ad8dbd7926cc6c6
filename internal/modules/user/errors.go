package user

import "errors"

var (
	ErrUserNotFound        = errors.New("User not found")
	ErrNotYourProfile      = errors.New("You can only update your own profile")
	ErrRoleChangeForbidden = errors.New("Only admin can change user roles")
	ErrInvalidRole         = errors.New("Role must be either admin or customer")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters")
	ErrEmailExists         = errors.New("Email already exists")
	ErrNoFields            = errors.New("No fields to update")
	ErrHasActiveBookings   = errors.New("Cannot delete user with active bookings")
)
