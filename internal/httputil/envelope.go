package httputil

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// ErrorEnvelope is the canonical JSON error body. At most one envelope is ever
// written per request; validation failures carry validation_errors instead of
// details and path.
type ErrorEnvelope struct {
	Error            string                 `json:"error"`
	Message          string                 `json:"message"`
	Details          string                 `json:"details,omitempty"`
	Timestamp        time.Time              `json:"timestamp"`
	RequestID        string                 `json:"request_id"`
	Path             string                 `json:"path,omitempty"`
	ValidationErrors []apperrors.FieldError `json:"validation_errors,omitempty"`
}

// WriteError serializes a single error envelope to the response. If the response
// has already begun transmitting, it does nothing: the response is owned by
// whoever started it first and a second writer must never corrupt the stream.
func WriteError(c *gin.Context, clock Clock, requestID string, statusCode int, errorCode, message string) {
	if c.Writer.Written() {
		return
	}

	envelope := ErrorEnvelope{
		Error:     errorCode,
		Message:   message,
		Timestamp: clock.Now().UTC(),
		RequestID: requestID,
		Path:      c.Request.URL.Path,
	}

	c.JSON(statusCode, envelope)
}

// WriteValidationError serializes a 422 envelope carrying the ordered list of
// field-level validation errors. Same single-write guard as WriteError.
func WriteValidationError(c *gin.Context, clock Clock, requestID string, fields []apperrors.FieldError) {
	if c.Writer.Written() {
		return
	}

	envelope := ErrorEnvelope{
		Error:            CodeValidationError,
		Message:          "The request contains validation errors",
		Timestamp:        clock.Now().UTC(),
		RequestID:        requestID,
		ValidationErrors: fields,
	}

	c.JSON(http.StatusUnprocessableEntity, envelope)
}
