package utils

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a record
var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with the entity that was missing
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// ValidationError reports a malformed or unknown field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TranslateNotFound turns gorm's missing-row error into ErrNotFound for entity
func TranslateNotFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(entity, id)
	}
	return err
}

// ErrForbidden is returned when the caller may not act on a record
var ErrForbidden = errors.New("forbidden")

// IsNotFound reports whether err is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// CheckID returns NotFound for an id that is not a uuid; every primary key is one
func CheckID(entity, id string) error {
	if err := uuid.Validate(id); err != nil {
		return NotFound(entity, id)
	}
	return nil
}
