package tagger

// Options selects which derived fields the engine emits. Nil pointers keep
// the default (enabled).
type Options struct {
	Normal *bool
	Lemma  *bool
}

// Config is the resolved form of Options.
type Config struct {
	Normal bool
	Lemma  bool
}

// Bool is a convenience for building Options literals.
func Bool(v bool) *bool { return &v }

// resolveConfig applies the coupling between the two switches: lemmas are
// keyed on the normal form, and a normalized token without a lemma is rarely
// useful, so each switch re-enables the other. The only way to turn either
// off is to turn both off explicitly.
func resolveConfig(opts Options) Config {
	normal, lemma := true, true
	if opts.Normal != nil {
		normal = *opts.Normal
	}
	if opts.Lemma != nil {
		lemma = *opts.Lemma
	}
	lemma = lemma || normal
	normal = normal || lemma
	return Config{Normal: normal, Lemma: lemma}
}
