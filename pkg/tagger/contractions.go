package tagger

// contraction fixes the tag, and usually the lemma, of a contracted fragment.
// Keys are normal forms as the tokenizer splits them: "can't" arrives as
// "ca" + "n't", "I'll" as "I" + "'ll". An empty lemma means the fragment
// carries none (its tag is a closed class).
type contraction struct {
	pos   string
	lemma string
}

var contractions = map[string]contraction{
	"n't": {"RB", "not"},
	"'s":  {"VBZ", "be"},
	"'ve": {"VBP", "have"},
	"'m":  {"VBP", "be"},
	"'re": {"VBP", "be"},
	"'ll": {"MD", "will"},
	"'d":  {"MD", "would"},
	"'em": {"PRP", ""},

	// orphaned heads of n't contractions
	"sha": {"MD", "shall"},
	"wo":  {"MD", "will"},
	"ca":  {"MD", "can"},
	"ai":  {"VBP", "be"},
}
