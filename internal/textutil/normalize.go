package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "perchè"
// and "perche" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// punctuationFolder folds typographic quote variants and collapses ellipsis
// spelling differences between libretto prose and track-title metadata.
var punctuationFolder = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"...", "…",
)

// separatorStripper removes the separator punctuation that track titles and
// libretto text disagree on.
var separatorStripper = strings.NewReplacer(
	",", "",
	";", "",
	":", "",
	"!", "",
	"?", "",
)

// NormalizeForMatch produces the canonical form used for anchor matching:
// accents stripped, lowercased, smart punctuation folded, separator
// punctuation removed, doubled spaces collapsed, trimmed.
func NormalizeForMatch(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		stripped = text
	}
	out := strings.ToLower(stripped)
	out = punctuationFolder.Replace(out)
	out = separatorStripper.Replace(out)
	out = strings.ReplaceAll(out, "  ", " ")
	return strings.TrimSpace(out)
}

// Prefix returns the first n runes of s without splitting a rune.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	seen := 0
	for i := range s {
		if seen == n {
			return s[:i]
		}
		seen++
	}
	return s
}
