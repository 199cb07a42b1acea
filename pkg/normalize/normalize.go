// Package normalize produces the lookup form of a token: lowercased and
// with diacritics folded to their base Latin letters ("Nestlé" → "nestle").
//
// The fold is NFD decomposition, removal of combining marks, and NFC
// recomposition. Normalization is idempotent: Fold(Fold(s)) == Fold(s).
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder strips combining marks after decomposition.
// Built once; transform.Transformer chains are stateless per String call.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the normal form of value: lowercase, diacritic-free.
func Fold(value string) string {
	lower := strings.ToLower(value)
	if isPlainASCII(lower) {
		return lower
	}
	folded, _, err := transform.String(folder, lower)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lowercased input rather than dropping the token.
		return lower
	}
	return folded
}

// isPlainASCII reports whether s needs no folding pass.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
