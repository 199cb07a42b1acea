// Package tagger assigns Penn Treebank part-of-speech tags and lemmas to
// English text. Tagging is fully deterministic: a lexicon lookup (with
// suffix-based guessing for unknown words) assigns an initial tag to every
// token, a fixed sequence of contextual passes refines tags from their
// neighbors, and a final stage attaches normal forms and lemmas.
//
// The engine accepts text three ways: a raw sentence (tokenized internally),
// pre-split token strings, or fully formed Token values from an upstream
// stage such as entity annotation.
package tagger

import (
	"github.com/kittclouds/postag/pkg/lemma"
	"github.com/kittclouds/postag/pkg/lexicon"
	"github.com/kittclouds/postag/pkg/normalize"
	"github.com/kittclouds/postag/pkg/tokenizer"
)

// Engine tags tokens against a lexicon and a lemma store. It is not safe for
// concurrent use while UpdateLexicon or UpdateLemma is in flight; mutate the
// stores before tagging begins.
type Engine struct {
	lexicon *lexicon.Store
	lemmas  *lemma.Store
	cfg     Config
}

// New returns an Engine with the bundled lexicon and lemma data and both
// output switches on.
func New() *Engine {
	return &Engine{
		lexicon: lexicon.New(),
		lemmas:  lemma.New(),
		cfg:     Config{Normal: true, Lemma: true},
	}
}

// DefineConfig resolves opts, installs the result and returns it.
func (e *Engine) DefineConfig(opts Options) Config {
	e.cfg = resolveConfig(opts)
	return e.cfg
}

// UpdateLexicon merges entries into the engine's lexicon. See
// lexicon.Store.Update for validation rules.
func (e *Engine) UpdateLexicon(entries map[string][]string) error {
	return e.lexicon.Update(entries)
}

// UpdateLemma inserts or replaces one lemma entry.
func (e *Engine) UpdateLemma(normal, pos, lemma string) {
	e.lemmas.Set(normal, pos, lemma)
}

// TagSentence tokenizes text and tags the result.
func (e *Engine) TagSentence(text string) []Token {
	raw := tokenizer.Tokenize(text)
	tokens := make([]Token, len(raw))
	for i, t := range raw {
		tokens[i] = Token{Value: t.Value, Tag: t.Kind}
	}
	return e.Tag(tokens)
}

// TagRawTokens tags pre-split token strings, inferring each token's coarse
// kind from its shape.
func (e *Engine) TagRawTokens(values []string) []Token {
	tokens := make([]Token, len(values))
	for i, v := range values {
		tokens[i] = Token{Value: v, Tag: tokenizer.Classify(v)}
	}
	return e.Tag(tokens)
}

// Tag runs the full pipeline over tokens in place and returns the slice.
// Tokens that arrive with a Pos keep it through the first pass; tokens with
// an EntityType are never rewritten by the contextual passes.
func (e *Engine) Tag(tokens []Token) []Token {
	for i := range tokens {
		e.initial(&tokens[i])
	}
	e.applyRules(tokens)
	for i := range tokens {
		e.finalize(&tokens[i])
	}
	return tokens
}

// initial assigns the context-free tag: contraction table first, then the
// coarse token kind, then lexicon lookup with suffix guessing as fallback.
func (e *Engine) initial(t *Token) {
	if t.Tag == "" {
		t.Tag = tokenizer.Classify(t.Value)
	}
	t.Normal = normalize.Fold(t.Value)
	if t.Pos != "" {
		return
	}
	// An annotated entity with no caller-supplied tag reads as a proper noun.
	if t.EntityType != "" {
		t.Pos = "NNP"
		return
	}
	if c, ok := contractions[t.Normal]; ok {
		t.Pos = c.pos
		return
	}
	switch t.Tag {
	case tokenizer.Number:
		t.Pos = "CD"
	case tokenizer.Ordinal:
		t.Pos = "JJ"
	case tokenizer.Punctuation:
		t.Pos = punctPos(t.Value)
	case tokenizer.Symbol:
		t.Pos = symbolPos(t.Value)
	case tokenizer.URL, tokenizer.Email:
		t.Pos = "NN"
	default:
		if tags := e.lexicon.Lookup(t.Value); len(tags) > 0 {
			t.Pos = tags[0]
		} else {
			t.Pos = classifyUnknown(t.Value)
		}
	}
}

// finalize attaches the lemma and strips fields the configuration disables.
// A contraction whose tag survived the contextual passes keeps its fixed
// lemma; everything else goes through the lemma store.
func (e *Engine) finalize(t *Token) {
	if e.cfg.Lemma {
		if c, ok := contractions[t.Normal]; ok && c.pos == t.Pos {
			t.Lemma = c.lemma
		} else if l, ok := e.lemmas.Resolve(t.Normal, t.Pos); ok {
			t.Lemma = l
		}
	}
	if !e.cfg.Normal {
		t.Normal = ""
	}
}

func (e *Engine) known(value string) bool {
	return e.lexicon.Lookup(value) != nil
}

func (e *Engine) hasCandidate(value, tag string) bool {
	for _, c := range e.lexicon.Lookup(value) {
		if c == tag {
			return true
		}
	}
	return false
}
