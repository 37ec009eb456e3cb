package utils_test

import (
	"testing"

	"github.com/burlang/burlang/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase unchanged",
			input:    "байгал",
			expected: "байгал",
		},
		{
			name:     "cyrillic uppercase folded",
			input:    "Байгал",
			expected: "байгал",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  байгал \t",
			expected: "байгал",
		},
		{
			name:     "inner whitespace collapsed",
			input:    "сайн   байна",
			expected: "сайн байна",
		},
		{
			name:     "latin mixed case",
			input:    "BaiGal",
			expected: "baigal",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, utils.NormalizeWord(tt.input))
		})
	}
}

func TestNormalizeWordIdempotent(t *testing.T) {
	t.Parallel()

	once := utils.NormalizeWord("  СайН   Байна  ")
	assert.Equal(t, once, utils.NormalizeWord(once))
}
