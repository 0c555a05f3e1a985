package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/identity/internal/errors"
)

// Pagination defaults shared by every list endpoint.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// ParsePagination parses and validates the offset and limit query parameters.
// Parse failures wrap ErrInvalidInput so handlers map them to a 400 response.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = parseBoundedInt(c, "offset", 0, 0, -1)
	if err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput,
			"invalid offset parameter: must be a non-negative integer")
	}

	limit, err = parseBoundedInt(c, "limit", DefaultPageLimit, 1, MaxPageLimit)
	if err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput,
			fmt.Sprintf("invalid limit parameter: must be between 1 and %d", MaxPageLimit))
	}

	return offset, limit, nil
}

// parseBoundedInt reads an integer query parameter and enforces min and,
// when max is non-negative, an upper bound.
func parseBoundedInt(c *gin.Context, name string, def, min, max int) (int, error) {
	raw := c.DefaultQuery(name, strconv.Itoa(def))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < min || (max >= 0 && value > max) {
		return 0, fmt.Errorf("%s out of range", name)
	}
	return value, nil
}
