// Package label reconciles composite "<icon> <name>" labels with canonical category names.
package label

import (
	"regexp"
	"strings"
)

// leadingNonWord matches the icon glyph and any separator in front of a name.
// \w is ASCII-only, so a name that starts with an accented letter, a digit run that
// follows punctuation, or other non-word characters loses that prefix as well.
var leadingNonWord = regexp.MustCompile(`^\W+`)

// Normalize strips a leading run of non-word characters, trims the remainder and
// lowercases it. Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	s = leadingNonWord.ReplaceAllString(s, "")
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether a transaction label refers to the named category.
func Matches(transactionLabel, categoryName string) bool {
	return Normalize(transactionLabel) == Normalize(categoryName)
}
