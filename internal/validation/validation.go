package validation

import (
	"regexp"
	"strings"
)

// IdentifierPattern defines the valid asset identifier format: stock ids
// and manufacturer serials are alphanumeric with hyphens, underscores
// and dots.
var IdentifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateIdentifier checks if an asset identifier matches the allowed
// pattern.
func ValidateIdentifier(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	return IdentifierPattern.MatchString(id)
}

// NormalizeIdentifier trims whitespace and uppercases an identifier so
// scanner input and keyboard input hit the same records.
func NormalizeIdentifier(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
