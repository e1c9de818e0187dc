package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/correlation"
	apperrors "github.com/allisson/catalog/internal/errors"
	"github.com/allisson/catalog/internal/httputil"
)

// ErrorHandlerMiddleware is the outermost error boundary of the pipeline. It
// catches panics and handler-attached errors, logs them with severity keyed to
// the failure kind, classifies them through the taxonomy, and writes exactly
// one canonical envelope. Failures in inner middleware, authentication
// included, surface here and still produce the canonical response shape.
func ErrorHandlerMiddleware(logger *slog.Logger, clock httputil.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			var err error
			if r := recover(); r != nil {
				if recovered, ok := r.(error); ok {
					err = recovered
				} else {
					err = fmt.Errorf("panic: %v", r)
				}
			} else if last := c.Errors.Last(); last != nil {
				err = last.Err
			}

			if err == nil {
				return
			}

			handleError(c, err, logger, clock)
		}()

		c.Next()
	}
}

func handleError(c *gin.Context, err error, logger *slog.Logger, clock httputil.Clock) {
	requestID := correlation.RequestID(c.Request.Context())
	if requestID == "" {
		// The boundary must not depend on the correlation stage having run.
		requestID = uuid.NewString()
	}

	log := logger.With(
		slog.String("request_id", requestID),
		slog.String("path", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
	)

	// The request's own cancellation is not a server failure: log it, send a
	// status-only response, and stop. A deadline that expired server-side still
	// flows through the taxonomy below.
	if errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil {
		log.Info("request cancelled by client", slog.String("error", err.Error()))
		if !c.Writer.Written() {
			c.Status(httputil.StatusClientClosedRequest)
		}
		c.Abort()
		return
	}

	statusCode, errorCode, message := httputil.Classify(err)

	// Severity is keyed to the failure kind: validation and forbidden are
	// warnings, not-found and cancellation are informational, everything else
	// (conflicts included) is an error.
	switch statusCode {
	case http.StatusUnprocessableEntity, http.StatusForbidden:
		log.Warn("request rejected", slog.String("error", err.Error()), slog.Int("status", statusCode))
	case http.StatusNotFound, httputil.StatusClientClosedRequest:
		log.Info("request failed", slog.String("error", err.Error()), slog.Int("status", statusCode))
	default:
		log.Error("request failed", slog.String("error", err.Error()), slog.Int("status", statusCode))
	}

	if c.Writer.Written() {
		// The response is already on the wire; a second body would corrupt it.
		log.Warn("response already written, skipping error envelope")
		c.Abort()
		return
	}

	writeEnvelope(c, err, requestID, statusCode, errorCode, message, clock, log)
	c.Abort()
}

// writeEnvelope serializes the envelope with a local catch-all: a failure while
// writing the error response must never escape the boundary. When the client
// is already gone the write failure is expected and not worth logging.
func writeEnvelope(
	c *gin.Context,
	err error,
	requestID string,
	statusCode int,
	errorCode, message string,
	clock httputil.Clock,
	log *slog.Logger,
) {
	defer func() {
		if r := recover(); r != nil {
			if c.Request.Context().Err() == nil {
				log.Error("failed to write error response", slog.Any("error", r))
			}
		}
	}()

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Fields) > 0 {
		httputil.WriteValidationError(c, clock, requestID, validationErr.Fields)
		return
	}

	httputil.WriteError(c, clock, requestID, statusCode, errorCode, message)
}
