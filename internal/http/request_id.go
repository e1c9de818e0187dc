package http

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/correlation"
)

// RequestIDHeader is the header carrying the correlation identifier on both
// requests and responses. Untyped so it satisfies the requestid option type.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddlewares returns the correlation stage of the pipeline: a
// sanitizer that discards malformed inbound identifiers followed by the
// requestid middleware that reuses a valid inbound identifier or generates a
// fresh UUIDv4, echoes it on the response header, and stores it in the request
// context for handlers, logs, and error envelopes.
//
// The stage runs before logging and error handling so every later participant
// observes the same identifier. Reuse requires a canonically formatted UUID;
// anything else is treated as absent.
func RequestIDMiddlewares() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		requestIDSanitizer(),
		requestid.New(
			requestid.WithCustomHeaderStrKey(RequestIDHeader),
			requestid.WithGenerator(uuid.NewString),
			requestid.WithHandler(func(c *gin.Context, rid string) {
				ctx := correlation.WithRequestID(c.Request.Context(), rid)
				c.Request = c.Request.WithContext(ctx)
			}),
		),
	}
}

// requestIDSanitizer removes an inbound correlation header that does not parse
// as a UUID, forcing the requestid middleware to generate a fresh one.
func requestIDSanitizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.GetHeader(RequestIDHeader)
		if value != "" && !isCanonicalUUID(value) {
			c.Request.Header.Del(RequestIDHeader)
		}
		c.Next()
	}
}

// isCanonicalUUID reports whether value is a UUID in the canonical 36-character
// form. uuid.Parse also accepts braced and urn-prefixed variants, which would
// otherwise be echoed back verbatim.
func isCanonicalUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
