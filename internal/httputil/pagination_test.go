package httputil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/catalog/internal/errors"
)

func TestParsePagination(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, _ := testContext(http.MethodGet, "/v1/items")

		offset, limit, err := ParsePagination(c)

		require.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		c, _ := testContext(http.MethodGet, "/v1/items?offset=20&limit=10")

		offset, limit, err := ParsePagination(c)

		require.NoError(t, err)
		assert.Equal(t, 20, offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("NegativeOffset", func(t *testing.T) {
		c, _ := testContext(http.MethodGet, "/v1/items?offset=-1")

		_, _, err := ParsePagination(c)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

		var validationErr *apperrors.ValidationError
		require.True(t, apperrors.As(err, &validationErr))
		assert.Equal(t, "offset", validationErr.Fields[0].Field)
	})

	t.Run("LimitTooLarge", func(t *testing.T) {
		c, _ := testContext(http.MethodGet, "/v1/items?limit=101")

		_, _, err := ParsePagination(c)

		require.Error(t, err)

		var validationErr *apperrors.ValidationError
		require.True(t, apperrors.As(err, &validationErr))
		assert.Equal(t, "limit", validationErr.Fields[0].Field)
	})

	t.Run("NonNumericLimit", func(t *testing.T) {
		c, _ := testContext(http.MethodGet, "/v1/items?limit=abc")

		_, _, err := ParsePagination(c)

		assert.Error(t, err)
	})
}
