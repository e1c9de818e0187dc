// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and classified into HTTP responses by the exception middleware.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated client doesn't have permission.
	ErrForbidden = errors.New("forbidden")
)

// ConflictError is a business-rule conflict that carries its own machine-readable
// code (e.g., "ISBN_ALREADY_EXISTS"). The code doubles as the client-facing message.
type ConflictError struct {
	Code string
}

// Error returns the conflict code.
func (e *ConflictError) Error() string {
	return e.Code
}

// Is reports ErrConflict so errors.Is(err, ErrConflict) matches.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflict creates a ConflictError with the given code.
func NewConflict(code string) error {
	return &ConflictError{Code: code}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a request validation failure carrying an ordered list of
// field-level errors. The order of Fields is preserved end to end.
type ValidationError struct {
	Fields []FieldError
}

// Error returns a summary of the failed fields.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := "validation failed:"
	for _, f := range e.Fields {
		msg += fmt.Sprintf(" %s: %s;", f.Field, f.Message)
	}
	return msg[:len(msg)-1]
}

// Is reports ErrInvalidInput so errors.Is(err, ErrInvalidInput) matches.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidation creates a ValidationError from an ordered list of field errors.
func NewValidation(fields ...FieldError) error {
	return &ValidationError{Fields: fields}
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
