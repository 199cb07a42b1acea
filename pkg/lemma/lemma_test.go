package lemma

import "testing"

func TestResolveIrregulars(t *testing.T) {
	s := New()
	cases := []struct {
		normal, pos, want string
	}{
		{"is", "VBZ", "be"},
		{"were", "VBD", "be"},
		{"broken", "VBN", "break"},
		{"ridden", "VBN", "ride"},
		{"would", "MD", "will"},
		{"flies", "VBZ", "fly"},
		{"flies", "NNS", "fly"},
		{"horses", "NNS", "horse"},
		{"best", "JJS", "good"},
		{"got", "VBN", "get"},
	}
	for _, c := range cases {
		got, ok := s.Resolve(c.normal, c.pos)
		if !ok || got != c.want {
			t.Errorf("Resolve(%q, %q) = %q, %v; want %q", c.normal, c.pos, got, ok, c.want)
		}
	}
}

func TestResolveIdentityFallback(t *testing.T) {
	s := New()
	cases := []struct {
		normal, pos string
	}{
		{"being", "VBG"},   // no entry on purpose; surface form is its own lemma
		{"people", "NNS"},  // same
		{"banana", "NN"},
		{"nestle", "NNP"},
		{"will", "MD"},
		{"everyday", "JJ"},
		{"1st", "JJ"},
		{"%", "NN"},
	}
	for _, c := range cases {
		got, ok := s.Resolve(c.normal, c.pos)
		if !ok || got != c.normal {
			t.Errorf("Resolve(%q, %q) = %q, %v; want identity", c.normal, c.pos, got, ok)
		}
	}
}

func TestResolveIneligible(t *testing.T) {
	s := New()
	for _, pos := range []string{"DT", "IN", "TO", "CC", "RB", "PRP", "PRP$", "WP", "CD", "POS", ".", ","} {
		if got, ok := s.Resolve("x", pos); ok {
			t.Errorf("Resolve(x, %q) = %q, want no lemma", pos, got)
		}
	}
}

func TestPosDistinguishesEntries(t *testing.T) {
	s := New()
	// "left" is leave as a verb but its own lemma as an adjective.
	if got, _ := s.Resolve("left", "VBN"); got != "leave" {
		t.Errorf("Resolve(left, VBN) = %q, want leave", got)
	}
	if got, _ := s.Resolve("left", "JJ"); got != "left" {
		t.Errorf("Resolve(left, JJ) = %q, want left", got)
	}
}

func TestSet(t *testing.T) {
	s := New()
	s.Set("corpora", "NNS", "corpus")
	if got, _ := s.Resolve("corpora", "NNS"); got != "corpus" {
		t.Errorf("Resolve after Set = %q, want corpus", got)
	}
}
