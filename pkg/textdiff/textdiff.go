// Package textdiff scores free-text answers against an expected string.
package textdiff

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio returns a normalized similarity between a and b on a 0-100
// scale: 100 for identical strings, 0 when every rune differs. The
// ratio is derived from the Levenshtein edit distance over the longer
// of the two strings, truncated toward zero.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	if dist >= longest {
		return 0
	}
	return (longest - dist) * 100 / longest
}

// FoldRatio is Ratio over case-folded, whitespace-trimmed input.
func FoldRatio(a, b string) int {
	return Ratio(normalize(a), normalize(b))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
