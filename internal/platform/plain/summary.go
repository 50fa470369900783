package plain

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/letra/internal/results"
	"github.com/vovakirdan/letra/internal/session"
)

// WriteRecord prints the summary of a run that just finished.
func WriteRecord(w io.Writer, rec session.Record) {
	res := rec.Result
	fmt.Fprintf(w, "\n%s complete · %s\n", res.Mode, themeName(res.Theme))
	writeScore(w, res.Score, len(res.Words), res.Timed, res.TimeLeft, res.FinalScore)
	if rec.Best > 0 {
		best := fmt.Sprintf("Best:   %d", rec.Best)
		if rec.NewBest {
			best += " (new best!)"
		}
		fmt.Fprintln(w, best)
	}
	writeWords(w, res.Words)
	if rec.Warning != nil {
		fmt.Fprintf(w, "\nWarning: result not saved: %v\n", rec.Warning)
	}
}

// WriteDaily prints a stored Daily result.
func WriteDaily(w io.Writer, d results.DailyResult, now time.Time) {
	fmt.Fprintf(w, "Daily %s · %s\n", d.Date, themeName(d.Theme))
	writeScore(w, d.Score, len(d.Words), true, d.TimeLeft, d.FinalScore)
	fmt.Fprintf(w, "Played: %s\n", humanize.RelTime(d.CreatedAt(), now, "ago", "from now"))
	writeWords(w, d.Words)
}

func writeScore(w io.Writer, score, total int, timed bool, timeLeft, final int) {
	fmt.Fprintf(w, "Solved: %d of %d\n", score, total)
	if timed {
		fmt.Fprintf(w, "Bonus:  %d (%ds left)\n", final-score, timeLeft)
	}
	fmt.Fprintf(w, "Final:  %d\n", final)
}

func writeWords(w io.Writer, words []string) {
	if len(words) == 0 {
		return
	}
	upper := make([]string, len(words))
	for i, word := range words {
		upper[i] = strings.ToUpper(word)
	}
	fmt.Fprintf(w, "Words:  %s\n", strings.Join(upper, ", "))
}
