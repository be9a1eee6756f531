package services

import (
	"errors"
	"fmt"
)

// Service error taxonomy. Controllers map these onto HTTP statuses in one
// place; anything unrecognised becomes a 500 with the detail kept
// server-side.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a login probe learns nothing about which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound merges "missing" and "not owned by the caller" so that a
	// 404 never confirms a resource exists.
	ErrNotFound = errors.New("not found or unauthorized")

	// ErrEmailTaken signals a duplicate registration.
	ErrEmailTaken = errors.New("user already exists")
)

// ValidationError marks missing or malformed input and unknown enum values.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validationf builds a ValidationError with a client-facing message.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
