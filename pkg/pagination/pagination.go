package pagination

import (
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many records any page query can request.
	MaxLimit = 100
)

// Params holds normalized offset pagination inputs.
type Params struct {
	Page  int
	Limit int
}

// ParsePage interprets a raw page query value. Missing, non-numeric, or
// sub-1 input falls back to page 1; this leniency is deliberate.
func ParsePage(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return 1
	}
	return value
}

// ParseLimit interprets a raw limit query value. Missing or non-numeric input
// falls back to DefaultLimit; numeric input clamps into [1, MaxLimit].
func ParseLimit(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultLimit
	}
	return NormalizeLimit(value)
}

// NormalizeLimit clamps a numeric limit into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Offset converts page/limit into the number of records to skip.
func (p Params) Offset() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages reports ceil(total/limit), never less than 1: an empty result
// set still reports one notional page.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = 1
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	if pages < 1 {
		return 1
	}
	return int(pages)
}
