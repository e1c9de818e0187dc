// Package httputil provides HTTP utility functions for request and response handling:
// the failure taxonomy, the error envelope writer, and pagination parsing.
package httputil

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// StatusClientClosedRequest is the non-standard status used when the client
// abandoned the request before a response could be written.
const StatusClientClosedRequest = 499

// Machine-readable error codes, stable across releases.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeItemNotFound        = "ITEM_NOT_FOUND"
	CodeRequestCancelled    = "REQUEST_CANCELLED"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// Classify maps a failure to its HTTP status code, error code, and client-facing
// message. It is a pure function: no I/O, no logging. The mapping is a closed set;
// extend it by adding cases, never by letting a known kind fall through to the
// 500 default.
func Classify(err error) (statusCode int, errorCode string, message string) {
	var conflictErr *apperrors.ConflictError

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity, CodeValidationError, "The request contains validation errors"

	case apperrors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, CodeForbidden, "Insufficient permissions"

	case apperrors.As(err, &conflictErr):
		// Conflict-specific code carried by the failure; message echoes the code.
		return http.StatusConflict, conflictErr.Code, conflictErr.Code

	case apperrors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, CodeConflict, CodeConflict

	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, CodeItemNotFound, "The requested resource could not be found"

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized, "Authentication required"

	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, CodeRequestCancelled, "Request was cancelled"

	default:
		return http.StatusInternalServerError, CodeInternalServerError, "An unexpected error occurred"
	}
}
