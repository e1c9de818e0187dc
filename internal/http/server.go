// Package http provides the HTTP server and the request pipeline: correlation,
// logging, error handling, rate limiting, CORS, metrics, and authentication,
// in that order, ahead of the catalog handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/allisson/catalog/internal/auth/http"
	authService "github.com/allisson/catalog/internal/auth/service"
	catalogHTTP "github.com/allisson/catalog/internal/catalog/http"
	"github.com/allisson/catalog/internal/config"
	"github.com/allisson/catalog/internal/httputil"
	"github.com/allisson/catalog/internal/metrics"
)

// RouterConfig bundles the dependencies of the request pipeline.
type RouterConfig struct {
	Config          *config.Config
	Logger          *slog.Logger
	Clock           httputil.Clock
	KeyStore        *authService.KeyStore
	MeterProvider   metric.MeterProvider
	BusinessMetrics metrics.BusinessMetrics
	ItemHandler     *catalogHTTP.ItemHandler
}

// NewRouter composes the request pipeline. Stage order is a tested invariant:
//
//  1. Correlation: reuse or generate the request identifier
//  2. Request logging
//  3. Error boundary: panics and attached errors become canonical envelopes
//  4. Per-IP rate limiting (optional)
//  5. CORS (optional)
//  6. HTTP metrics (optional)
//  7. Authentication gate
//  8. Catalog handlers
//
// The error boundary sits outside authentication so a fault in the gate still
// yields the canonical response shape. Health endpoints are registered before
// the gate: they pass through stages 1-6 but are never challenged for a
// credential.
func NewRouter(rc RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	for _, m := range RequestIDMiddlewares() {
		router.Use(m)
	}
	router.Use(CustomLoggerMiddleware(rc.Logger))
	router.Use(ErrorHandlerMiddleware(rc.Logger, rc.Clock))

	if rc.Config.RateLimitEnabled {
		router.Use(authHTTP.RateLimitMiddleware(
			rc.Config.RateLimitRequestsPerSec,
			rc.Config.RateLimitBurst,
			rc.Logger,
		))
	}

	if corsMiddleware := createCORSMiddleware(
		rc.Config.CORSEnabled,
		rc.Config.CORSAllowOrigins,
		rc.Logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.Config.MetricsEnabled && rc.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(rc.MeterProvider, rc.Config.MetricsNamespace))
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", healthHandler)

	v1 := router.Group("/v1", authHTTP.APIKeyMiddleware(
		rc.KeyStore,
		authHTTP.Options{
			HeaderName:        rc.Config.APIKeyHeader,
			QueryParamEnabled: rc.Config.APIKeyQueryEnabled,
			QueryParamName:    rc.Config.APIKeyQueryParam,
		},
		rc.Clock,
		rc.BusinessMetrics,
		rc.Logger,
	))

	items := v1.Group("/items")
	items.POST("", rc.ItemHandler.CreateHandler)
	items.GET("", rc.ItemHandler.ListHandler)
	items.GET("/:id", rc.ItemHandler.GetHandler)
	items.PUT("/:id", rc.ItemHandler.UpdateHandler)
	items.DELETE("/:id", rc.ItemHandler.DeleteHandler)

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server serving the given router.
func NewServer(host string, port int, router *gin.Engine, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
