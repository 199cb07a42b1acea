// Package ner marks gazetteer entities in a token stream before tagging.
// Entity surfaces are compiled into a single Aho-Corasick automaton, so
// scanning a sentence is linear in its length regardless of how many
// entities are registered. Matched tokens get their entity type and a
// proper-noun tag; the tagger's contextual passes leave them alone.
package ner

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/orsinium-labs/stopwords"

	"github.com/kittclouds/postag/pkg/normalize"
	"github.com/kittclouds/postag/pkg/tagger"
	"github.com/kittclouds/postag/pkg/tokenizer"
)

// Entry registers one entity: its canonical label, optional alias surfaces,
// and the type stamped on matching tokens ("person", "location", ...).
type Entry struct {
	Label   string
	Aliases []string
	Type    string
}

// Annotator scans token streams for registered entity mentions.
type Annotator struct {
	ac       *ahocorasick.Automaton
	patterns []string
	types    []string // pattern index -> entity type
	stop     *stopwords.Stopwords
}

// New compiles entries into an Annotator. Surfaces are canonicalized with
// the same tokenizer and case folding the tagger uses, so "O'Hara" the
// pattern and "o'hara" in text meet on equal terms. When two entries share
// a surface the one registered first wins.
func New(entries []Entry) (*Annotator, error) {
	a := &Annotator{stop: stopwords.MustGet("en")}
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, surface := range append([]string{e.Label}, e.Aliases...) {
			key := canon(surface)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			a.patterns = append(a.patterns, key)
			a.types = append(a.types, e.Type)
		}
	}

	if len(a.patterns) == 0 {
		return a, nil
	}
	ac, err := ahocorasick.NewBuilder().
		AddStrings(a.patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	a.ac = ac
	return a, nil
}

// canon reduces a surface form to the space-joined folded token values the
// haystack is built from.
func canon(s string) string {
	toks := tokenizer.Tokenize(s)
	parts := make([]string, 0, len(toks))
	for _, t := range toks {
		parts = append(parts, normalize.Fold(t.Value))
	}
	return strings.Join(parts, " ")
}

// AnnotateSentence tokenizes text and annotates the result. The returned
// tokens are ready for tagging.
func (a *Annotator) AnnotateSentence(text string) []tagger.Token {
	raw := tokenizer.Tokenize(text)
	tokens := make([]tagger.Token, len(raw))
	for i, t := range raw {
		tokens[i] = tagger.Token{Value: t.Value, Tag: t.Kind}
	}
	return a.Annotate(tokens)
}

// Annotate marks entity mentions in tokens, in place. A mention must cover
// whole tokens; longer mentions beat shorter ones on overlap, and a mention
// consisting of a single stopword is discarded ("the" alone never names the
// band "The The" registered by an overeager caller).
func (a *Annotator) Annotate(tokens []tagger.Token) []tagger.Token {
	if a.ac == nil || len(tokens) == 0 || len(a.patterns) == 0 {
		return tokens
	}

	// Join folded token values into a haystack, remembering which byte
	// offsets are token boundaries.
	var b strings.Builder
	startAt := make(map[int]int, len(tokens)) // haystack offset -> token index
	endAt := make(map[int]int, len(tokens))
	for i := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		startAt[b.Len()] = i
		b.WriteString(normalize.Fold(tokens[i].Value))
		endAt[b.Len()] = i
	}
	haystack := b.String()

	matches := a.ac.FindAllOverlapping([]byte(haystack))
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End-matches[i].Start > matches[j].End-matches[j].Start
	})

	claimed := make([]bool, len(tokens))
	for _, m := range matches {
		first, ok := startAt[m.Start]
		if !ok {
			continue
		}
		last, ok := endAt[m.End]
		if !ok || last < first {
			continue
		}
		if first == last && a.stop.Contains(haystack[m.Start:m.End]) {
			continue
		}
		if anyClaimed(claimed, first, last) {
			continue
		}
		entityType := a.types[m.PatternID]
		for i := first; i <= last; i++ {
			claimed[i] = true
			tokens[i].EntityType = entityType
			if tokens[i].Pos == "" {
				tokens[i].Pos = "NNP"
			}
		}
	}
	return tokens
}

func anyClaimed(claimed []bool, first, last int) bool {
	for i := first; i <= last; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}
