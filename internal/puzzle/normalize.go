package puzzle

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Normalize removes all whitespace from s and uppercases the rest. Answers
// are compared in this form so spacing in the player's input never matters.
func Normalize(s string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// Matches reports whether guess and answer normalize to the same string.
func Matches(guess, answer string) bool {
	return Normalize(guess) == Normalize(answer)
}

// Close reports whether guess is a full-length attempt that misses answer by
// only a few edits. It never reports an exact match as close.
func Close(guess, answer string) bool {
	g, a := Normalize(guess), Normalize(answer)
	if g == a || g == "" {
		return false
	}
	n := utf8.RuneCountInString(a)
	if utf8.RuneCountInString(g) != n {
		return false
	}
	return levenshtein.ComputeDistance(g, a) <= closeLimit(n)
}

func closeLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
