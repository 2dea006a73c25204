package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"courtside/internal/shared/constants"
)

// Pagination holds normalized page/page-size values parsed from a request.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the database offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads "page" and "page_size" query parameters, clamping
// them to sane bounds.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

func parseQueryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// TotalPages computes the number of pages for a total item count.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		pages = 1
	}
	return pages
}
