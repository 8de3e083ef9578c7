package utils

import (
	"strconv"

	"github.com/dishcovery/api-go/models"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 6
)

// ParsePositiveInt parses s as a positive integer, falling back to def when
// the value is missing, non-numeric, or < 1.
func ParsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// Paginate slices a fully materialized result list into one page. Page and
// size must already be clamped to >= 1 by the caller. A page index past the
// end of the list yields an empty (or short final) page, never an error, and
// an empty list still reports one well-formed page.
func Paginate(items []models.ScoredResult, page, size int) models.PageResult {
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	// (page-1)*size wraps negative for huge page values; any out-of-range
	// start collapses to an empty page rather than a slice panic.
	start := (page - 1) * size
	if start < 0 || start > total {
		start = total
	}
	end := start + size
	if end < start || end > total {
		end = total
	}

	return models.PageResult{
		TotalResults: total,
		CurrentPage:  page,
		TotalPages:   totalPages,
		Items:        items[start:end],
	}
}
