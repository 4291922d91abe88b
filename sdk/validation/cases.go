package validation

import (
	"strings"
	"unicode"
)

// CamelCaseToTitleCase turns a JSON field name into the label used in
// field messages: "paymentMethod" -> "Payment Method", "calendarEventID"
// -> "Calendar Event ID".
func CamelCaseToTitleCase(s string) string {
	runes := []rune(s)

	var b strings.Builder
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
