// Package repository holds the read/write operations of the bar API. Each
// failure is wrapped around one of the sentinel kinds below so handlers can
// map it with errors.Is.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced table, customer, product or
// order does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for malformed input. It is always detected
// before anything is written.
var ErrValidation = errors.New("validation failed")

// ErrConflict is returned when a table identifier is already taken.
var ErrConflict = errors.New("conflict")

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// isDuplicateKey recognizes unique violations whether or not the dialector
// translated them.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "Duplicate entry")
}
