// Package validation provides field checks and pointer helpers shared by the
// repositories and HTTP bridges.
package validation

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field errors. The zero value is ready to use.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error.
func (e *Errors) Add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns nil when no errors were collected.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Required records an error when v is blank.
func (e *Errors) Required(field, v, message string) {
	if strings.TrimSpace(v) == "" {
		e.Add(field, "%s", message)
	}
}

// MaxLen records an error when v is longer than n characters.
func (e *Errors) MaxLen(field, v string, n int) {
	if utf8.RuneCountInString(v) > n {
		e.Add(field, "%s cannot be more than %d characters", CamelCaseToTitleCase(field), n)
	}
}

// OneOf records an error when v is not in allowed.
func (e *Errors) OneOf(field, v string, allowed []string) {
	if !slices.Contains(allowed, v) {
		e.Add(field, "%s must be one of: %s", CamelCaseToTitleCase(field), strings.Join(allowed, ", "))
	}
}

// NonNegative records an error when d is below zero.
func (e *Errors) NonNegative(field string, d decimal.Decimal) {
	if d.IsNegative() {
		e.Add(field, "%s cannot be negative", CamelCaseToTitleCase(field))
	}
}

// Date parses an optional date field. A nil or blank value yields nil.
func (e *Errors) Date(field string, v *string) *time.Time {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	t, err := ParseFlexibleDate(*v)
	if err != nil {
		e.Add(field, "%s must be a valid date", CamelCaseToTitleCase(field))
		return nil
	}
	return &t
}
