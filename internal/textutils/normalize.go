// Package textutils provides text cleaning utilities for free-text name fields.
package textutils

import (
	"regexp"
	"strings"
)

var (
	// C0/C1 control ranges plus zero-width characters and the byte order mark.
	// Spreadsheet exports routinely smuggle these into name cells.
	invisibleChars = regexp.MustCompile(`[\x00-\x1F\x7F-\x9F\x{200B}-\x{200D}\x{FEFF}]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// NormalizeName strips non-printable characters from a name and collapses any
// run of whitespace to a single space. Idempotent.
func NormalizeName(name string) string {
	cleaned := invisibleChars.ReplaceAllString(name, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Tokens splits a name into its normalized, lower-cased words.
func Tokens(name string) []string {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil
	}
	words := strings.Fields(normalized)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return words
}
