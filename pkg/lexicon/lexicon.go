// Package lexicon provides the word → POS-tag candidate store used for the
// first tagging pass. Keys are case-normalized (uppercased normal forms), so
// EAT, Eat and eat resolve to the same entry. The first tag in a candidate
// list is the default reading of the word in isolation; the rule engine may
// promote any of the later candidates.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLexicon is returned by Update for input that is not a proper
// word → tag-list mapping.
var ErrInvalidLexicon = errors.New("lexicon must be a non-nil map of words to tag lists")

// Store maps uppercased word keys to ordered POS candidate lists.
//
// A Store is shared, long-lived state: Update overwrites entries in place and
// is not isolated from concurrent readers. Callers in a concurrent host must
// serialize Update against Lookup (single logical writer, typically a setup
// phase before tagging begins).
type Store struct {
	entries map[string][]string
}

// New returns a Store seeded with the bundled English lexicon.
func New() *Store {
	s := &Store{entries: make(map[string][]string, len(bundled))}
	for word, tags := range bundled {
		s.entries[word] = tags
	}
	return s
}

// Lookup returns the ordered candidate tags for word, or nil when the word
// is unknown. The lookup key is the uppercased word. The returned slice is
// shared; callers must not modify it.
func (s *Store) Lookup(word string) []string {
	return s.entries[strings.ToUpper(word)]
}

// Update merges entries into the store, replacing the candidate list of any
// existing key wholesale. Keys are uppercased on insertion. It fails without
// modifying the store when entries is nil, contains an empty key, or maps a
// key to an empty or nil tag list.
func (s *Store) Update(entries map[string][]string) error {
	if entries == nil {
		return fmt.Errorf("%w, instead found %v of type %T", ErrInvalidLexicon, entries, entries)
	}
	for word, tags := range entries {
		if word == "" {
			return fmt.Errorf("%w, instead found an empty key", ErrInvalidLexicon)
		}
		if len(tags) == 0 {
			return fmt.Errorf("%w, instead found key %q with tags of type %T and length 0", ErrInvalidLexicon, word, tags)
		}
		for _, tag := range tags {
			if tag == "" {
				return fmt.Errorf("%w, instead found key %q with an empty tag", ErrInvalidLexicon, word)
			}
		}
	}
	for word, tags := range entries {
		dup := make([]string, len(tags))
		copy(dup, tags)
		s.entries[strings.ToUpper(word)] = dup
	}
	return nil
}

// Len returns the number of entries currently in the store.
func (s *Store) Len() int {
	return len(s.entries)
}
