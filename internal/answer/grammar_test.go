package answer

import "testing"

func TestIsCorrect_PipeAlternatives(t *testing.T) {
	tests := []struct {
		answer  string
		pattern string
		want    bool
	}{
		{"машина", "машина|автомобиль", true},
		{"автомобиль", "машина|автомобиль", true},
		{"АВТОМОБИЛЬ ", "машина|автомобиль", true},
		// pipe groups accept exactly one alternative, not all of them
		{"машина, автомобиль", "машина|автомобиль", false},
		{"телега", "машина|автомобиль", false},
		{"", "машина|автомобиль", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.answer, tc.pattern)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.answer, tc.pattern, got, tc.want)
		}
	}
}

func TestIsCorrect_CommaGroups(t *testing.T) {
	tests := []struct {
		answer  string
		pattern string
		want    bool
	}{
		{"быстрый, точный", "быстрый, точный", true},
		// order-insensitive
		{"точный, быстрый", "быстрый, точный", true},
		{"быстрый", "быстрый, точный", false},
		{"быстрый, точный, лишний", "быстрый, точный", false},
		{"быстрый, быстрый", "быстрый, точный", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.answer, tc.pattern)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.answer, tc.pattern, got, tc.want)
		}
	}
}

func TestIsCorrect_ParenthesizedGroups(t *testing.T) {
	tests := []struct {
		answer  string
		pattern string
		want    bool
	}{
		{"равный, сейчас", "(равный|одинаковый), (сейчас|сразу)", true},
		{"одинаковый, сразу", "(равный|одинаковый), (сейчас|сразу)", true},
		{"сразу, равный", "(равный|одинаковый), (сейчас|сразу)", true},
		// both alternatives of one group instead of one per group is wrong
		{"равный, одинаковый, сейчас", "(равный|одинаковый), (сейчас|сразу)", false},
		{"равный, одинаковый", "(равный|одинаковый), (сейчас|сразу)", false},
		{"равный", "(равный|одинаковый), (сейчас|сразу)", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.answer, tc.pattern)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.answer, tc.pattern, got, tc.want)
		}
	}
}

func TestIsCorrect_BracketClarifications(t *testing.T) {
	tests := []struct {
		answer  string
		pattern string
		want    bool
	}{
		{"этаж", "этаж [здания]", true},
		{"этаж здания", "этаж [здания]", true},
		// the clarification alone is not the answer
		{"здания", "этаж [здания]", false},
		{"Этаж  Здания", "этаж [здания]", true},
		{"пол", "этаж [здания]", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.answer, tc.pattern)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.answer, tc.pattern, got, tc.want)
		}
	}
}

func TestIsCorrect_PlainAnswers(t *testing.T) {
	tests := []struct {
		answer  string
		pattern string
		want    bool
	}{
		{"house", "house", true},
		{"  HOUSE ", "house", true},
		{"café", "cafe", true},
		{"houses", "house", false},
		{"", "house", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.answer, tc.pattern)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.answer, tc.pattern, got, tc.want)
		}
	}
}
