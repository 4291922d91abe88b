package validation

import (
	"fmt"
	"strings"
	"time"
)

// ParseFlexibleDate tries to parse a date string using multiple common formats.
// ISO forms are tried first so "2025-01-02" is never read as day-first.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.DateTime,
		time.DateOnly,
		"2006/01/02",
		"01/02/2006",
		"01-02-2006",
		"01/02/06",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// DateOnly renders t as YYYY-MM-DD in UTC.
func DateOnly(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
