package desa

import (
	"errors"
	"fmt"

	"github.com/daniilsolovey/desa-portal/internal/db"
)

// ErrNotFound is returned when the mutated or requested row does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError carries a user-facing message for rejected form input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// StoreError is a failed write. Message is safe to show to the admin.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeFailed maps a store error to ErrNotFound or a StoreError prefixed with action.
func storeFailed(action string, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return &StoreError{
		Message: fmt.Sprintf("%s: %s", action, err.Error()),
		Err:     err,
	}
}

// IsValidation reports whether err is a ValidationError and returns its message.
func IsValidation(err error) (string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	return "", false
}
