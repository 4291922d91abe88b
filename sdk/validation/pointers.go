package validation

import (
	"time"
)

// FormatTimePtrToString renders t as RFC3339, or "" when nil.
func FormatTimePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
