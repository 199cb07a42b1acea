package tokenizer

import (
	"reflect"
	"testing"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestTokenizeSimple(t *testing.T) {
	got := Tokenize("this is a simple sentence")
	want := []string{"this", "is", "a", "simple", "sentence"}
	if !reflect.DeepEqual(values(got), want) {
		t.Errorf("values = %v, want %v", values(got), want)
	}
	for _, tok := range got {
		if tok.Kind != Word {
			t.Errorf("token %q kind = %q, want word", tok.Value, tok.Kind)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); got == nil || len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty slice", got)
	}
}

func TestContractionSplitting(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"can't", []string{"ca", "n't"}},
		{"shan't", []string{"sha", "n't"}},
		{"won't", []string{"wo", "n't"}},
		{"ain't", []string{"ai", "n't"}},
		{"don't", []string{"do", "n't"}},
		{"I've", []string{"I", "'ve"}},
		{"John's", []string{"John", "'s"}},
		{"Then's", []string{"Then", "'s"}},
		{"I'll", []string{"I", "'ll"}},
		{"we're", []string{"we", "'re"}},
		{"o'hara", []string{"o'hara"}},
		{"O'Hara", []string{"O'Hara"}},
	}
	for _, c := range cases {
		got := values(Tokenize(c.in))
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTerminalPunctuation(t *testing.T) {
	got := Tokenize("I won't believe you.")
	want := []Token{
		{"I", Word}, {"wo", Word}, {"n't", Word},
		{"believe", Word}, {"you", Word}, {".", Punctuation},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNumbersSymbolsOrdinals(t *testing.T) {
	got := Tokenize("I earned 10% bonus in the 1st quarter for being #3")
	want := []Token{
		{"I", Word}, {"earned", Word}, {"10", Number}, {"%", Symbol},
		{"bonus", Word}, {"in", Word}, {"the", Word}, {"1st", Ordinal},
		{"quarter", Word}, {"for", Word}, {"being", Word},
		{"#", Symbol}, {"3", Number},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAmpersand(t *testing.T) {
	got := Tokenize("He & his friend")
	want := []Token{{"He", Word}, {"&", Symbol}, {"his", Word}, {"friend", Word}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestURLAndEmail(t *testing.T) {
	got := Tokenize("see https://example.com or mail bob@example.com")
	if got[1].Kind != URL || got[1].Value != "https://example.com" {
		t.Errorf("url token = %v", got[1])
	}
	if got[4].Kind != Email || got[4].Value != "bob@example.com" {
		t.Errorf("email token = %v", got[4])
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"Umkhonto", Word},
		{"63", Number},
		{"1,000", Number},
		{"1980s", Word},
		{"1st", Ordinal},
		{".", Punctuation},
		{"&", Symbol},
		{"%", Symbol},
		{"o'hara", Word},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
