package timeutil

import (
	"math"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// LongDateLayout matches dates like "Jan 2, 2006" as published by injury reports.
const LongDateLayout = "Jan 2, 2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseLongDate parses "Jan 2, 2006", accepting full month names as well.
func ParseLongDate(value string) (time.Time, error) {
	t, err := time.Parse(LongDateLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("January 2, 2006", value)
}

// DaysUntil returns the whole days from now until target, rounded up, never below min.
func DaysUntil(now, target time.Time, min int) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < min {
		return min
	}
	return days
}
