package anagram

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "café"
// folds to the same letters as "CAFE".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize maps raw text to the canonical lowercase a-z form every
// multiset is built from: the target text, each dictionary entry and
// the included text all go through here, so their letters stay
// comparable. It never fails; text with no usable letters normalizes
// to "". Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		// transform only errors on malformed UTF-8; the a-z filter
		// below still applies to the raw bytes.
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r >= 'a' && r <= 'z' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
