// Package lemma resolves the dictionary base form of a word given its final
// POS tag. Entries are keyed on the (normal form, POS tag) pair, so the same
// surface form can carry different lemmas under different tags ("flies" is
// "fly" both as VBZ and NNS, but "left" is "leave" only as a verb).
//
// Open-class tags with no entry fall back to the normal form itself; closed
// classes carry no lemma at all.
package lemma

import "strings"

// Key addresses a single lemma entry.
type Key struct {
	Normal string
	Pos    string
}

// Store maps (normal, pos) pairs to lemmas. Like the lexicon, it is shared
// mutable state with a single-writer discipline: Set must not race with
// Resolve.
type Store struct {
	entries map[Key]string
}

// New returns a Store seeded with the bundled irregular-form data.
func New() *Store {
	s := &Store{entries: make(map[Key]string, len(bundled))}
	for k, v := range bundled {
		s.entries[k] = v
	}
	return s
}

// Eligible reports whether tokens tagged pos carry a lemma. The open classes
// are nouns, verbs and adjectives (all inflections) plus modals; everything
// else (determiners, prepositions, pronouns, adverbs, punctuation, cardinal
// numbers, the possessive marker) does not.
func Eligible(pos string) bool {
	return strings.HasPrefix(pos, "NN") ||
		strings.HasPrefix(pos, "VB") ||
		strings.HasPrefix(pos, "JJ") ||
		pos == "MD"
}

// Resolve returns the lemma for the (normal, pos) pair. An explicit entry
// wins; otherwise eligible tags fall back to the normal form itself, and
// ineligible tags resolve to no lemma at all.
func (s *Store) Resolve(normal, pos string) (string, bool) {
	if l, ok := s.entries[Key{normal, pos}]; ok {
		return l, true
	}
	if Eligible(pos) {
		return normal, true
	}
	return "", false
}

// Set inserts or replaces a single entry.
func (s *Store) Set(normal, pos, lemma string) {
	s.entries[Key{normal, pos}] = lemma
}

// Len returns the number of explicit entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}
