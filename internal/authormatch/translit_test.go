package authormatch

import "testing"

func TestTransliterate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "acute accent",
			input:    "é",
			expected: "e",
		},
		{
			name:     "accented surname",
			input:    "Y. Gómez Martínez",
			expected: "Y. Gomez Martinez",
		},
		{
			name:     "sharp s expands",
			input:    "Großmann",
			expected: "Grossmann",
		},
		{
			name:     "slashed o",
			input:    "Søren Ørsted",
			expected: "Soren Orsted",
		},
		{
			name:     "stroked l",
			input:    "Ł. Kowalski",
			expected: "L. Kowalski",
		},
		{
			name:     "cyrillic approximation",
			input:    "Пушкин",
			expected: "Pushkin",
		},
		{
			name:     "ascii passes through",
			input:    "T. Anderson",
			expected: "T. Anderson",
		},
		{
			name:     "uncovered script passes through",
			input:    "山田",
			expected: "山田",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Transliterate(tt.input)
			if got != tt.expected {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
