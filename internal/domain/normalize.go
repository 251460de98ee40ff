package domain

import (
	"strings"
)

// NormalizeCell trims surrounding whitespace from a cell value before it is
// compared or stored.
func NormalizeCell(value string) string {
	return strings.TrimSpace(value)
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername trims a username and compresses inner runs of spaces.
func NormalizeUsername(username string) string {
	return strings.Join(strings.Fields(username), " ")
}
