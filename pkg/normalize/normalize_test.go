package normalize

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Nestlé", "nestle"},
		{"EAT", "eat"},
		{"o'hara", "o'hara"},
		{"Café", "cafe"},
		{"naïve", "naive"},
		{"Zürich", "zurich"},
		{"1980s", "1980s"},
		{"%", "%"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"Nestlé", "São Paulo", "crème brûlée", "plain", "O'Hara"}
	for _, in := range inputs {
		once := Fold(in)
		if twice := Fold(once); twice != once {
			t.Errorf("Fold not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
