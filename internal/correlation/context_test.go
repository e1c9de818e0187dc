package correlation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "0195b2f0-5a95-7a3a-b61d-5c1f4c3f9f11")
		assert.Equal(t, "0195b2f0-5a95-7a3a-b61d-5c1f4c3f9f11", RequestID(ctx))
	})

	t.Run("UnsetReturnsEmpty", func(t *testing.T) {
		assert.Equal(t, "", RequestID(context.Background()))
	})

	t.Run("OverwriteKeepsLatest", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "first")
		ctx = WithRequestID(ctx, "second")
		assert.Equal(t, "second", RequestID(ctx))
	})
}
