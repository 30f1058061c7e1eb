package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Letter generation and entitlement errors.
var (
	// ErrProfileNotFound wraps ErrNotFound so transports render it as a plain
	// "not found" without revealing whether the profile exists for someone else.
	ErrProfileNotFound = fmt.Errorf("student profile %w", ErrNotFound)

	ErrQuotaExceeded          = errors.New("letter quota exceeded")
	ErrUnsupportedCombination = errors.New("unsupported country and letter type combination")
	ErrNotImplemented         = errors.New("letter strategy not implemented yet")
	ErrGenerationFailed       = errors.New("letter generation failed")
	ErrMissingRequiredClaim   = errors.New("identity is missing a required claim")
)

// IsStrategyGap reports whether err means the requested letter cannot be
// produced yet (unknown or not-yet-built strategy).
func IsStrategyGap(err error) bool {
	return errors.Is(err, ErrNotImplemented) || errors.Is(err, ErrUnsupportedCombination)
}

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
