package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeWord produces the dedup key for vocabulary entries: leading and
// trailing whitespace is trimmed, inner runs of whitespace collapse to a
// single space, and the result is case-folded so Cyrillic and Latin casings
// land on the same key. Sentences keep their raw text as the dedup key;
// only words normalize.
func NormalizeWord(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}

	// cases.Caser carries internal state, so build one per call
	return cases.Fold().String(s)
}
