package textutil

import (
	"strings"
	"unicode"
)

// Slug converts a label to a lowercase hyphen-joined slug. Alphanumerics
// are kept, every other rune becomes a field separator, runs collapse to a
// single hyphen. Returns "" for input with no alphanumerics.
func Slug(label string) string {
	lowered := strings.ToLower(label)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, lowered)
	return strings.Join(strings.Fields(mapped), "-")
}
