// Package correlation propagates the per-request correlation identifier through
// context.Context so every stage can tag logs and error payloads with it.
package correlation

import (
	"context"
)

// requestIDKey is a context key type for storing the request identifier.
type requestIDKey struct{}

// WithRequestID stores the correlation identifier in the context.
// This is called by the request-ID middleware once per request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID retrieves the correlation identifier from the context.
// Returns an empty string if no identifier was set.
func RequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}
