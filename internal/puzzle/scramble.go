// Package puzzle turns catalog words into prompts and judges answers.
package puzzle

import (
	"strings"

	"github.com/vovakirdan/letra/internal/core"
)

// MaxAttempts bounds how often a term is reshuffled while it still reads
// the same as the answer.
const MaxAttempts = 100

// Scrambler shuffles the letters of each term of a word independently.
type Scrambler struct {
	src core.Source
}

// NewScrambler returns a Scrambler drawing from src. A nil src uses the
// system random source.
func NewScrambler(src core.Source) *Scrambler {
	if src == nil {
		src = core.SystemSource{}
	}
	return &Scrambler{src: src}
}

// Scramble uppercases word and shuffles the letters of every space-separated
// term, keeping spaces where they were. A term with at least two distinct
// letters never comes back unchanged; shorter or uniform terms are returned
// uppercased after MaxAttempts tries. Empty terms from repeated spaces pass
// through.
func (s *Scrambler) Scramble(word string) string {
	terms := strings.Split(word, " ")
	for i, term := range terms {
		if term == "" {
			continue
		}
		terms[i] = s.scrambleTerm(strings.ToUpper(term))
	}
	return strings.Join(terms, " ")
}

func (s *Scrambler) scrambleTerm(original string) string {
	letters := []rune(original)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if out := string(core.Shuffle(letters, s.src)); out != original {
			return out
		}
	}
	return original
}
