package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/catalog/internal/auth/http"
	"github.com/allisson/catalog/internal/correlation"
)

// CustomLoggerMiddleware logs every request with its correlation identifier,
// method, path, status, and latency. It runs inside the correlation stage so
// the identifier is always present. Requests that passed the authentication
// gate additionally carry the bounded credential prefix.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			slog.String("request_id", correlation.RequestID(c.Request.Context())),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", c.ClientIP()),
		}
		if identity, ok := authHTTP.GetIdentity(c.Request.Context()); ok {
			attrs = append(attrs, slog.String("api_key_prefix", identity.KeyPrefix))
		}

		logger.Info("http request", attrs...)
	}
}
