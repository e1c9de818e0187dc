package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// ParsePagination safely parses and validates offset and limit query parameters.
// It uses default values of 0 for offset and 50 for limit.
// The limit cannot exceed 100. Invalid values surface as field-level validation
// errors so the exception middleware renders them as 422 envelopes.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	// Parse offset query parameter (default: 0)
	offsetStr := c.DefaultQuery("offset", "0")
	offset, parseErr := strconv.Atoi(offsetStr)
	if parseErr != nil || offset < 0 {
		return 0, 0, apperrors.NewValidation(apperrors.FieldError{
			Field:   "offset",
			Message: "offset must be a non-negative integer",
		})
	}

	// Parse limit query parameter (default: 50, max: 100)
	limitStr := c.DefaultQuery("limit", "50")
	limit, parseErr = strconv.Atoi(limitStr)
	if parseErr != nil || limit < 1 || limit > 100 {
		return 0, 0, apperrors.NewValidation(apperrors.FieldError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	return offset, limit, nil
}
