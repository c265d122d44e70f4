package models

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ValidationError reports malformed or out-of-range input, keyed by field.
// It is raised before any mutation is attempted.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	for field, reason := range e.Fields {
		return field + ": " + reason
	}
	return "validation failed"
}
