package repository

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultTablePrefix is used when a batch is requested without a prefix.
	DefaultTablePrefix = "MESA"
	// MaxTableBatch bounds a single batch creation.
	MaxTableBatch = 50

	identifierSeparator = "-"
)

var prefixPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,39}$`)

// FormatIdentifier builds the human readable identifier "{prefix}-{n}".
func FormatIdentifier(prefix string, n int) string {
	return fmt.Sprintf("%s%s%d", prefix, identifierSeparator, n)
}

// suffixOf returns the numeric suffix of identifier under prefix, or 0 when
// the identifier does not belong to prefix or the suffix is not a number.
func suffixOf(prefix, identifier string) int {
	head := prefix + identifierSeparator
	if len(identifier) <= len(head) || !strings.EqualFold(identifier[:len(head)], head) {
		return 0
	}
	n, err := strconv.Atoi(identifier[len(head):])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// lastSuffix returns the highest numeric suffix used under prefix.
func lastSuffix(prefix string, identifiers []string) int {
	last := 0
	for _, identifier := range identifiers {
		if n := suffixOf(prefix, identifier); n > last {
			last = n
		}
	}
	return last
}

func validatePrefix(prefix string) error {
	if !prefixPattern.MatchString(prefix) {
		return invalid("prefix %q must be 1-40 letters, digits or hyphens", prefix)
	}
	return nil
}
