package tagger

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// goldenSentences exercise the full pipeline end to end: lexicon defaults,
// contraction splitting, the contextual passes and lemma resolution.
var goldenSentences = []string{
	"this is a simple sentence",
	"I will bear the expenses",
	"John's dog ate the food.",
}

func TestGoldenTagging(t *testing.T) {
	e := New()
	out := make([][]Token, len(goldenSentences))
	for i, s := range goldenSentences {
		out[i] = e.TagSentence(s)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "sentences", append(data, '\n'))
}
