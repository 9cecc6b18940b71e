package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation          = errors.New("validation error")
	ErrMissingColumn       = errors.New("missing column")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrInvalidResourceName = errors.New("invalid resource name")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DuplicateIdentifierError reports two rows that normalize to the same
// identifier.
type DuplicateIdentifierError struct {
	Identifier string
	First      MoveRecord
	Second     MoveRecord
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q produced by %q (line %d) and %q (line %d)",
		e.Identifier, e.First.DisplayName, e.First.Line, e.Second.DisplayName, e.Second.Line)
}

func (e *DuplicateIdentifierError) Unwrap() error { return ErrDuplicateIdentifier }
