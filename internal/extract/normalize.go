package extract

import (
	"strings"
	"unicode"
)

// Normalize cleans a raw OCR fragment into a comparable token.
//
// The token is lower-cased with every whitespace character (interior and
// boundary) and every hyphen removed. Normalize never fails: an empty or
// all-noise input yields an empty token. It is idempotent.
func Normalize(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment))
	for _, r := range strings.ToLower(fragment) {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
