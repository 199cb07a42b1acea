package tagger

import "github.com/kittclouds/postag/pkg/tokenizer"

// Token is a single unit of a sentence as it moves through the tagging
// pipeline. Value and Tag come from tokenization; Normal, Pos and Lemma are
// filled in by the engine. A non-empty EntityType freezes the token: the rule
// passes leave it untouched.
//
// The zero fields marshal away, so serialized output only carries what the
// active configuration produced.
type Token struct {
	Value      string         `json:"value"`
	Tag        tokenizer.Kind `json:"tag"`
	Normal     string         `json:"normal,omitempty"`
	Pos        string         `json:"pos,omitempty"`
	Lemma      string         `json:"lemma,omitempty"`
	EntityType string         `json:"entityType,omitempty"`
}
