package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the application services. Handlers translate
// them to HTTP status codes; anything unrecognized is reported as a 500
// with an opaque message.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

// Validation wraps ErrValidation with a field-level detail.
func Validation(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

// Conflict wraps ErrConflict with the conflicting attribute.
func Conflict(detail string) error {
	return fmt.Errorf("%w: %s", ErrConflict, detail)
}

// NotFound wraps ErrNotFound with the missing entity.
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
