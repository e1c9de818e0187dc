package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/catalog/internal/correlation"
)

func newCorrelationRouter() (*gin.Engine, *string) {
	router := gin.New()
	for _, m := range RequestIDMiddlewares() {
		router.Use(m)
	}

	var seenID string
	router.GET("/test", func(c *gin.Context) {
		seenID = correlation.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return router, &seenID
}

func TestRequestIDMiddlewares_ReusesValidInboundID(t *testing.T) {
	router, seenID := newCorrelationRouter()

	inbound := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, inbound)
	router.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get(RequestIDHeader))
	assert.Equal(t, inbound, *seenID)
}

func TestRequestIDMiddlewares_GeneratesWhenAbsent(t *testing.T) {
	router, seenID := newCorrelationRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	echoed := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(echoed)
	require.NoError(t, err)
	assert.Equal(t, echoed, *seenID)
}

func TestRequestIDMiddlewares_RegeneratesMalformedID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
	}{
		{"NotAUUID", "not-a-uuid"},
		{"TooShort", "1234"},
		{"BracedVariant", "{550e8400-e29b-41d4-a716-446655440000}"},
		{"URNVariant", "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, seenID := newCorrelationRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, tt.inbound)
			router.ServeHTTP(w, req)

			echoed := w.Header().Get(RequestIDHeader)
			assert.NotEqual(t, tt.inbound, echoed)
			_, err := uuid.Parse(echoed)
			require.NoError(t, err)
			assert.Equal(t, echoed, *seenID)
		})
	}
}

func TestIsCanonicalUUID(t *testing.T) {
	assert.True(t, isCanonicalUUID(uuid.NewString()))
	assert.False(t, isCanonicalUUID("not-a-uuid"))
	assert.False(t, isCanonicalUUID("{550e8400-e29b-41d4-a716-446655440000}"))
	assert.False(t, isCanonicalUUID(""))
}
