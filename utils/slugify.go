package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugTransformer decomposes characters into base + combining marks and
// drops the marks, so "Ústí" becomes "Usti".
var slugTransformer = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
)

// Slugify normalizes a display name into a filesystem-safe token:
// diacritics stripped, non-ASCII dropped, lowercased, spaces replaced
// with underscores. "Ústí nad Labem" → "usti_nad_labem".
func Slugify(name string) string {
	stripped, _, err := transform.String(slugTransformer, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r > unicode.MaxASCII {
			continue
		}
		if r == ' ' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
