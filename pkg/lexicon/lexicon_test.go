package lexicon

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupIsCaseNormalized(t *testing.T) {
	s := New()
	for _, word := range []string{"eat", "Eat", "EAT"} {
		tags := s.Lookup(word)
		if len(tags) == 0 {
			t.Fatalf("Lookup(%q) returned no candidates", word)
		}
		if tags[0] != "VB" {
			t.Errorf("Lookup(%q)[0] = %q, want VB", word, tags[0])
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	s := New()
	if tags := s.Lookup("forgo"); tags != nil {
		t.Errorf("Lookup(forgo) = %v, want nil", tags)
	}
}

func TestCandidateOrder(t *testing.T) {
	s := New()
	like := s.Lookup("like")
	if len(like) < 2 || like[0] != "IN" {
		t.Errorf("like candidates = %v, want IN first", like)
	}
	bear := s.Lookup("bear")
	if len(bear) != 2 || bear[0] != "NN" || bear[1] != "VB" {
		t.Errorf("bear candidates = %v, want [NN VB]", bear)
	}
}

func TestUpdateOverwritesWholesale(t *testing.T) {
	s := New()
	if err := s.Update(map[string][]string{"EAT": {"NN"}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	tags := s.Lookup("eat")
	if len(tags) != 1 || tags[0] != "NN" {
		t.Errorf("after update, eat candidates = %v, want [NN]", tags)
	}
}

func TestUpdateUppercasesKeys(t *testing.T) {
	s := New()
	if err := s.Update(map[string][]string{"o'hara": {"NNP"}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if tags := s.Lookup("O'Hara"); len(tags) != 1 || tags[0] != "NNP" {
		t.Errorf("Lookup(O'Hara) = %v, want [NNP]", tags)
	}
}

func TestUpdateNilInput(t *testing.T) {
	s := New()
	err := s.Update(nil)
	if err == nil {
		t.Fatal("Update(nil) succeeded, want error")
	}
	if !errors.Is(err, ErrInvalidLexicon) {
		t.Errorf("error %v does not wrap ErrInvalidLexicon", err)
	}
	if !strings.Contains(err.Error(), "must be a non-nil map") {
		t.Errorf("error message %q does not state the contract", err)
	}
}

func TestUpdateEmptyTagList(t *testing.T) {
	s := New()
	before := s.Lookup("eat")
	err := s.Update(map[string][]string{"EAT": nil})
	if !errors.Is(err, ErrInvalidLexicon) {
		t.Fatalf("Update with nil tag list: got %v, want ErrInvalidLexicon", err)
	}
	after := s.Lookup("eat")
	if len(after) != len(before) {
		t.Error("failed Update modified the store")
	}
}

func TestUpdateDoesNotAliasCallerSlice(t *testing.T) {
	s := New()
	tags := []string{"NN"}
	if err := s.Update(map[string][]string{"WIDGET": tags}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	tags[0] = "VB"
	if got := s.Lookup("widget"); got[0] != "NN" {
		t.Errorf("store aliased caller slice: got %v", got)
	}
}
