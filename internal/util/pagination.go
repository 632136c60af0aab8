package util

import "strconv"

const (
	DefaultPerPage = 12
	MaxPerPage     = 100
)

// Clamp silently normalizes public listing parameters: page below 1 becomes
// 1, per_page below 1 falls back to the default, per_page above the cap is
// capped.
func Clamp(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Offset converts clamped page/per_page into an SQL offset.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}

// TotalPages is ceil(total/perPage); an empty relation reports 0 pages.
func TotalPages(total int64, perPage int) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
