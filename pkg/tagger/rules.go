package tagger

import (
	"strings"

	"github.com/kittclouds/postag/pkg/tokenizer"
)

// The contextual passes below refine the tags assigned by the first pass.
// Each pass sweeps the whole sentence before the next one runs, and the order
// is fixed: earlier passes create the evidence later ones key off. A token
// with an entity type is never rewritten.

// applyRules runs every contextual pass over the sentence, in order.
func (e *Engine) applyRules(tokens []Token) {
	e.whPair(tokens)
	e.subjectPresent(tokens)
	e.modalHead(tokens)
	e.infinitiveHead(tokens)
	e.perfectParticiple(tokens)
	e.determinerHead(tokens)
	e.possessive(tokens)
	e.properNoun(tokens)
}

// whPair rewrites a sentence-initial WDT followed by an unknown word as a
// wh-pronoun plus proper noun ("what o'hara did" reads as a question about
// a person, not a determiner phrase).
func (e *Engine) whPair(tokens []Token) {
	if len(tokens) < 2 {
		return
	}
	first, second := &tokens[0], &tokens[1]
	if first.EntityType != "" || second.EntityType != "" {
		return
	}
	if first.Pos != "WDT" || second.Tag != tokenizer.Word {
		return
	}
	if e.known(second.Value) {
		return
	}
	first.Pos = "WP"
	second.Pos = "NNP"
}

// subjectPresent promotes a word right after a personal pronoun to present
// tense when the lexicon lists VBP among its candidates ("I like", "we fish").
func (e *Engine) subjectPresent(tokens []Token) {
	for i := 1; i < len(tokens); i++ {
		t := &tokens[i]
		if t.EntityType != "" || t.Tag != tokenizer.Word || t.Pos == "VBP" {
			continue
		}
		if tokens[i-1].Pos != "PRP" {
			continue
		}
		if e.hasCandidate(t.Value, "VBP") {
			t.Pos = "VBP"
		}
	}
}

// modalHead forces the base verb form after a modal, skipping at most one
// adverb ("would like", "wo n't forgo"). An unknown word that defaulted to
// NN is treated as a verb here.
func (e *Engine) modalHead(tokens []Token) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Pos != "MD" {
			continue
		}
		j := i + 1
		if tokens[j].Pos == "RB" && j+1 < len(tokens) {
			j++
		}
		t := &tokens[j]
		if t.EntityType != "" || t.Tag != tokenizer.Word {
			continue
		}
		switch {
		case e.hasCandidate(t.Value, "VB"):
			t.Pos = "VB"
		case !e.known(t.Value) && t.Pos == "NN":
			t.Pos = "VB"
		}
	}
}

// infinitiveHead forces the base verb form after TO ("to fish", "to time").
func (e *Engine) infinitiveHead(tokens []Token) {
	for i := 1; i < len(tokens); i++ {
		t := &tokens[i]
		if t.EntityType != "" || t.Tag != tokenizer.Word {
			continue
		}
		if tokens[i-1].Pos != "TO" {
			continue
		}
		switch {
		case e.hasCandidate(t.Value, "VB"):
			t.Pos = "VB"
		case !e.known(t.Value) && t.Pos == "NN":
			t.Pos = "VB"
		}
	}
}

// perfectAux are the normal forms of have/be that select a past participle.
var perfectAux = map[string]bool{
	"have": true, "has": true, "had": true, "'ve": true,
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "ai": true,
}

// perfectParticiple rewrites a VBN-capable word as VBN after a form of have
// or be, skipping at most one adverb ("is created", "ai n't got").
func (e *Engine) perfectParticiple(tokens []Token) {
	for i := 1; i < len(tokens); i++ {
		t := &tokens[i]
		if t.EntityType != "" || t.Tag != tokenizer.Word {
			continue
		}
		if !e.hasCandidate(t.Value, "VBN") {
			continue
		}
		j := i - 1
		if tokens[j].Pos == "RB" && j > 0 {
			j--
		}
		if perfectAux[tokens[j].Normal] {
			t.Pos = "VBN"
		}
	}
}

var verbalPos = map[string]bool{
	"VB": true, "VBP": true, "VBD": true, "VBG": true,
}

// determinerHead turns a verbal reading back into a noun when a determiner
// governs it, skipping at most one adjective ("a feeling", "the nice catch").
func (e *Engine) determinerHead(tokens []Token) {
	for i := 1; i < len(tokens); i++ {
		t := &tokens[i]
		if t.EntityType != "" || t.Tag != tokenizer.Word || !verbalPos[t.Pos] {
			continue
		}
		j := i - 1
		if strings.HasPrefix(tokens[j].Pos, "JJ") && j > 0 {
			j--
		}
		if tokens[j].Pos != "DT" {
			continue
		}
		if e.hasCandidate(t.Value, "NN") || !e.known(t.Value) {
			t.Pos = "NN"
		}
	}
}

// possessive rewrites 's as the possessive marker when it sits between a noun
// and a nominal ("John's home"), leaving the is-contraction reading alone
// everywhere else ("it's time", "Then's the moment").
func (e *Engine) possessive(tokens []Token) {
	for i := 1; i+1 < len(tokens); i++ {
		t := &tokens[i]
		if t.EntityType != "" || t.Normal != "'s" || t.Pos != "VBZ" {
			continue
		}
		if !strings.HasPrefix(tokens[i-1].Pos, "NN") {
			continue
		}
		next := tokens[i+1].Pos
		if strings.HasPrefix(next, "NN") || strings.HasPrefix(next, "JJ") {
			t.Pos = "POS"
		}
	}
}

// properNoun promotes a capitalized noun or adjective to NNP anywhere past
// the first token ("the African National Congress"). Sentence-initial
// capitals are ordinary words and stay as tagged.
func (e *Engine) properNoun(tokens []Token) {
	for i := 1; i < len(tokens); i++ {
		t := &tokens[i]
		if t.EntityType != "" || t.Tag != tokenizer.Word {
			continue
		}
		if t.Pos != "JJ" && t.Pos != "NN" {
			continue
		}
		if startsUpper(t.Value) {
			t.Pos = "NNP"
		}
	}
}
