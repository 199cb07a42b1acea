// Package tokenizer splits raw text into the coarse token records the tagger
// consumes: an ordered sequence of {value, kind} pairs where kind is one of
// word, number, ordinal, punctuation, symbol, url or email.
//
// Contracted forms are split the way the tagger expects them: "can't" becomes
// the two word tokens "ca" and "n't", "John's" becomes "John" and "'s".
// Internal apostrophes that are not contraction fragments are preserved
// ("o'hara" stays one token).
package tokenizer

import (
	"strings"
	"unicode"
)

// Kind is the coarse lexical class of a token.
type Kind string

const (
	Word        Kind = "word"
	Number      Kind = "number"
	Ordinal     Kind = "ordinal"
	Punctuation Kind = "punctuation"
	Symbol      Kind = "symbol"
	URL         Kind = "url"
	Email       Kind = "email"
)

// Token is a single coarse-classified unit of text.
type Token struct {
	Value string `json:"value"`
	Kind  Kind   `json:"tag"`
}

// contractionSuffixes are the post-apostrophe fragments that split off into
// their own token. Checked lowercase.
var contractionSuffixes = map[string]bool{
	"s": true, "ve": true, "ll": true, "d": true, "m": true, "re": true, "em": true,
}

// Tokenize splits text into tokens. Empty or all-space input yields an empty
// (non-nil) slice so callers can range over the result unconditionally.
func Tokenize(text string) []Token {
	tokens := []Token{}
	for _, field := range strings.Fields(text) {
		tokens = appendField(tokens, field)
	}
	return tokens
}

// appendField lexes one whitespace-delimited chunk.
func appendField(tokens []Token, field string) []Token {
	if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
		return append(tokens, Token{Value: field, Kind: URL})
	}
	if looksLikeEmail(field) {
		return append(tokens, Token{Value: field, Kind: Email})
	}

	runes := []rune(field)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || isNumericJoiner(runes[j], runes, j)) {
				j++
			}
			// Trailing letters glue onto the digits: "1st" is an ordinal,
			// "1980s" is a word.
			k := j
			for k < len(runes) && unicode.IsLetter(runes[k]) {
				k++
			}
			value := string(runes[i:k])
			tokens = append(tokens, Token{Value: value, Kind: classifyNumeric(value, k > j)})
			i = k
		case unicode.IsLetter(r) || (isApostrophe(r) && i+1 < len(runes) && unicode.IsLetter(runes[i+1])):
			j := i + 1
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || isApostrophe(runes[j]) || runes[j] == '-') {
				j++
			}
			tokens = appendWord(tokens, string(runes[i:j]))
			i = j
		case isSymbolRune(r):
			tokens = append(tokens, Token{Value: string(r), Kind: Symbol})
			i++
		default:
			tokens = append(tokens, Token{Value: string(r), Kind: Punctuation})
			i++
		}
	}
	return tokens
}

// appendWord emits a word value, splitting contraction fragments.
func appendWord(tokens []Token, value string) []Token {
	lower := strings.ToLower(value)

	if len(value) > 3 && strings.HasSuffix(lower, "n't") {
		cut := len(value) - 3
		tokens = append(tokens, Token{Value: value[:cut], Kind: Word})
		return append(tokens, Token{Value: value[cut:], Kind: Word})
	}

	if idx := lastApostrophe(value); idx > 0 && idx < len(value)-1 {
		if contractionSuffixes[strings.ToLower(value[idx+1:])] {
			tokens = append(tokens, Token{Value: value[:idx], Kind: Word})
			return append(tokens, Token{Value: value[idx:], Kind: Word})
		}
	}

	return append(tokens, Token{Value: value, Kind: Word})
}

// Classify infers the coarse kind of a bare token value. Used when callers
// supply pre-split raw tokens instead of running the tokenizer.
func Classify(value string) Kind {
	if value == "" {
		return Word
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return URL
	}
	if looksLikeEmail(value) {
		return Email
	}

	runes := []rune(value)
	if len(runes) == 1 {
		switch {
		case unicode.IsDigit(runes[0]):
			return Number
		case isSymbolRune(runes[0]):
			return Symbol
		case !unicode.IsLetter(runes[0]):
			return Punctuation
		}
	}

	digits := 0
	letters := 0
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if digits > 0 && letters == 0 {
		return Number
	}
	if digits > 0 && isOrdinalSuffix(value) {
		return Ordinal
	}
	return Word
}

func classifyNumeric(value string, hasLetters bool) Kind {
	if !hasLetters {
		return Number
	}
	if isOrdinalSuffix(value) {
		return Ordinal
	}
	return Word
}

// isOrdinalSuffix reports whether value is digits followed by st/nd/rd/th.
func isOrdinalSuffix(value string) bool {
	lower := strings.ToLower(value)
	var suffix string
	switch {
	case strings.HasSuffix(lower, "st"), strings.HasSuffix(lower, "nd"),
		strings.HasSuffix(lower, "rd"), strings.HasSuffix(lower, "th"):
		suffix = lower[len(lower)-2:]
	default:
		return false
	}
	head := lower[:len(lower)-len(suffix)]
	if head == "" {
		return false
	}
	for _, r := range head {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isNumericJoiner keeps decimal points and thousands separators inside a
// number token when digits continue on both sides.
func isNumericJoiner(r rune, runes []rune, i int) bool {
	if r != '.' && r != ',' {
		return false
	}
	return i > 0 && unicode.IsDigit(runes[i-1]) && i+1 < len(runes) && unicode.IsDigit(runes[i+1])
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isSymbolRune(r rune) bool {
	switch r {
	case '&', '%', '#', '$', '@', '+', '=', '*', '^', '~', '|', '<', '>', '/', '\\', '€', '£', '¥', '°':
		return true
	}
	return false
}

func lastApostrophe(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\'' {
			return i
		}
	}
	return -1
}

func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	dot := strings.IndexByte(s[at+1:], '.')
	if dot <= 0 || at+1+dot == len(s)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}
