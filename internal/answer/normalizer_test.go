package answer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  Hello   World  ", "hello world"},
		{"Café", "cafe"},
		{"naïve RÉSUMÉ", "naive resume"},
		{"don't stop!", "dont stop"},
		{"ЗДАНИЕ", "здание"},
		{"этаж,  здания", "этаж здания"},
		{"a\tb\nc", "a b c"},
		// ё decomposes to е plus a combining mark, so it folds to е
		{"(скобки) [и] всё|такое", "скобки и всетакое"},
		{"über-straße", "uberstraße"},
		{"123 go", "123 go"},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"  Hello   World  ",
		"Café au lait",
		"равный, сейчас",
		"этаж [здания]",
		"ümlaut ÖÄÜ ß",
		"mixed 123 !@# input",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
