// Package answer provides canonical normalization of answer text and
// evaluation of the alternative-answer notation used in translation entries.
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so that accented
// and unaccented spellings compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize folds text into its canonical comparable form: lower case,
// accents stripped, punctuation removed, whitespace collapsed. It is pure and
// idempotent; Normalize(Normalize(x)) == Normalize(x) for any input.
func Normalize(text string) string {
	text = strings.ToLower(text)

	if folded, _, err := transform.String(stripMarks, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
