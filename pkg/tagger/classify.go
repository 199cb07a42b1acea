package tagger

import (
	"strings"
	"unicode"
)

// suffixPos guesses the tag of a word the lexicon does not know. Checked in
// order; longer derivational suffixes sit below the short inflectional ones
// they would otherwise shadow.
var suffixPos = []struct {
	suffix string
	pos    string
}{
	{"ing", "VBG"},
	{"ed", "VBD"},
	{"ly", "RB"},
	{"est", "JJS"},
	{"ous", "JJ"},
	{"ful", "JJ"},
	{"ish", "JJ"},
	{"ive", "JJ"},
	{"able", "JJ"},
	{"ible", "JJ"},
	{"ness", "NN"},
	{"ment", "NN"},
	{"tion", "NN"},
	{"sion", "NN"},
	{"ship", "NN"},
	{"ism", "NN"},
	{"ity", "NN"},
}

// classifyUnknown assigns a tag to a word with no lexicon entry. Digit-led
// values are cardinals, capitalized values proper nouns; otherwise the suffix
// table decides, a plural-looking tail yields NNS, and NN is the default.
func classifyUnknown(value string) string {
	r := firstRune(value)
	switch {
	case unicode.IsDigit(r):
		return "CD"
	case unicode.IsUpper(r):
		return "NNP"
	}

	lower := strings.ToLower(value)
	for _, s := range suffixPos {
		if len(lower) > len(s.suffix)+1 && strings.HasSuffix(lower, s.suffix) {
			return s.pos
		}
	}
	if strings.HasSuffix(lower, "s") &&
		!strings.HasSuffix(lower, "ss") &&
		!strings.HasSuffix(lower, "us") &&
		!strings.HasSuffix(lower, "is") {
		return "NNS"
	}
	return "NN"
}

// punctPos maps a punctuation value to its Penn Treebank tag. Unrecognized
// marks tag as themselves.
func punctPos(value string) string {
	switch value {
	case ".", "!", "?", "…":
		return "."
	case ",":
		return ","
	case ";", ":":
		return ":"
	case "(", "[", "{":
		return "("
	case ")", "]", "}":
		return ")"
	}
	return value
}

// symbolPos maps a symbol value to its tag.
func symbolPos(value string) string {
	switch value {
	case "&":
		return "CC"
	case "%", "#":
		return "NN"
	case "$", "€", "£", "¥":
		return "$"
	}
	return "SYM"
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func startsUpper(s string) bool {
	return unicode.IsUpper(firstRune(s))
}
