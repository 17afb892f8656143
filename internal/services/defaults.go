package services

import (
	"time"

	"seminarmanager/internal/domain"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100

	defaultTimeout = 10 * time.Second
)

func orDefaultTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultTimeout
	}
	return timeout
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

func normalizePage(page domain.PaginationParams) domain.PaginationParams {
	page.Limit = normalizeLimit(page.Limit)
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}
