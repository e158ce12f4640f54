package services

import "strings"

// lower is shorthand for the case-insensitive LIKE filters used across
// the query services.
func lower(s string) string {
	return strings.ToLower(s)
}
