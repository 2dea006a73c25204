package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"courtside/internal/shared/errors"
	"courtside/internal/shared/id"
)

// ParseSIDParam extracts and validates a short ID path parameter.
// The prefix argument names the expected resource kind, e.g. id.PrefixInquiry.
func ParseSIDParam(c *gin.Context, name, prefix string) (string, error) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		return "", errors.NewValidationError(fmt.Sprintf("%s is required", name))
	}
	if !id.HasPrefix(prefix, value) {
		return "", errors.NewValidationError(fmt.Sprintf("invalid %s format", name))
	}
	return value, nil
}

// ParseCursorQuery extracts the optional "before" cursor query parameter.
func ParseCursorQuery(c *gin.Context) string {
	return strings.TrimSpace(c.Query("before"))
}
