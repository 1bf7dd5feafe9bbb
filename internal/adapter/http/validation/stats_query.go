package validation

import (
	"strconv"
	"strings"
	"time"

	"taskstats/internal/core/dateutil"
	"taskstats/internal/core/domain"
)

const (
	minYear = 1970
	maxYear = 9999
)

// Period falls back when value is empty or not a known period.
func Period(value string, fallback domain.Period) domain.Period {
	period, err := domain.ParsePeriod(value)
	if err != nil {
		return fallback
	}
	return period
}

// TargetDate parses a yyyy-MM-dd date in loc, defaulting to now.
func TargetDate(value string, now time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return now
	}
	parsed, err := time.ParseInLocation(dateutil.DateKeyLayout, value, now.Location())
	if err != nil {
		return now
	}
	return parsed
}

// Year defaults to now's year for empty or out-of-range values.
func Year(value string, now time.Time) int {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || year < minYear || year > maxYear {
		return now.Year()
	}
	return year
}

// Limit returns 0 (no limit) for anything that is not a positive integer.
func Limit(value string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// UserID parses the authenticated caller's id.
func UserID(value string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidUserID
	}
	return id, nil
}
