// Package repositories holds what the record repositories share.
package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every record kind's not-found sentinel, so
// errors.Is(err, repositories.ErrNotFound) holds for any of them.
var ErrNotFound = errors.New("record not found")

// NotFound returns the not-found sentinel for a record kind.
func NotFound(kind string) error {
	return fmt.Errorf("%s not found: %w", kind, ErrNotFound)
}
