package helpers

import (
	"net/http"
	"strconv"

	"seminarmanager/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseLimit reads limit from the query string and clamps it to [1, MaxLimit].
// Invalid or missing values fall back to DefaultLimit.
func ParseLimit(r *http.Request) int {
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = min(v, MaxLimit)
		}
	}
	return limit
}

// ParsePagination reads limit and offset from the query string.
// Invalid or negative offsets fall back to 0.
func ParsePagination(r *http.Request) domain.PaginationParams {
	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}
	return domain.PaginationParams{Limit: ParseLimit(r), Offset: offset}
}
