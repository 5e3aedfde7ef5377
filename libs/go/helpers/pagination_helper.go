package helpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/types/api/responses"
)

const (
	maxPageLimit     int32 = 100
	defaultPageLimit int32 = 20
)

// PaginationParams holds the parsed pagination parameters
type PaginationParams struct {
	Limit  int32
	Offset int32
	Page   int32
}

// ParsePaginationParams reads ?page=&limit= (or ?offset=&limit=) from the request.
// Limits above 100 are capped, non-positive values fall back to defaults.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	params := PaginationParams{Limit: defaultPageLimit, Page: 1}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := SafeParseInt32(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter: %w", err)
		}
		if limit > 0 {
			params.Limit = min(limit, maxPageLimit)
		}
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := SafeParseInt32(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %w", err)
		}
		if page > 0 {
			params.Page = page
			params.Offset = (page - 1) * params.Limit
		}
		return params, nil
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := SafeParseInt32(offsetStr)
		if err != nil {
			return params, fmt.Errorf("invalid offset parameter: %w", err)
		}
		if offset >= 0 {
			params.Offset = offset
			params.Page = offset/params.Limit + 1
		}
	}
	return params, nil
}

// BuildPagination fills the pagination block of a list response
func BuildPagination(params PaginationParams, total int64) responses.Pagination {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}
	return responses.Pagination{
		CurrentPage: int(params.Page),
		PerPage:     int(params.Limit),
		TotalItems:  int(total),
		TotalPages:  totalPages,
	}
}

// SafeParseInt32 parses a string to int32, rejecting values that overflow
func SafeParseInt32(s string) (int32, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, fmt.Errorf("value %d overflows int32", val)
	}
	return int32(val), nil
}
