package service

import "errors"

// Service errors. Callers check them with errors.Is.
var (
	// ErrUserNotFound indicates the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another account already uses the email.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidInput wraps validation failures on caller-supplied data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncorrectPassword indicates the current password supplied for a
	// password change did not match.
	ErrIncorrectPassword = errors.New("current password is incorrect")
)
