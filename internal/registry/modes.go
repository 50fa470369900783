package registry

import (
	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/run"
)

func init() {
	Register(Info{
		ID:          string(run.ModeDaily),
		Title:       "Daily",
		Description: "One run per day. Same theme and words for everyone, 60 seconds.",
		Timer:       true,
	}, newDaily)

	Register(Info{
		ID:          string(run.ModePractice),
		Title:       "Practice",
		Description: "Pick a theme and play as often as you like, with or without a timer.",
		Timer:       true,
		PicksTheme:  true,
	}, newPractice)

	Register(Info{
		ID:          string(run.ModeRelax),
		Title:       "Relax",
		Description: "No clock. Reveal a word when stuck and move on when ready.",
		PicksTheme:  true,
	}, newRelax)
}

func newDaily(c *catalog.Catalog, s Settings) *run.Run {
	cfg, words := run.Plan(c, run.Config{Mode: run.ModeDaily, Date: s.Date}, run.DailyWords, nil)
	return run.New(cfg, words, s.Options...)
}

func newPractice(c *catalog.Catalog, s Settings) *run.Run {
	cfg, words := run.Plan(c, run.Config{
		Mode:      run.ModePractice,
		Theme:     s.Theme,
		Timed:     s.Timed,
		TimeLimit: s.TimeLimit,
	}, wordCount(s), s.Source)
	return run.New(cfg, words, s.Options...)
}

func newRelax(c *catalog.Catalog, s Settings) *run.Run {
	cfg, words := run.Plan(c, run.Config{Mode: run.ModeRelax, Theme: s.Theme}, wordCount(s), s.Source)
	return run.New(cfg, words, s.Options...)
}

func wordCount(s Settings) int {
	if s.Words <= 0 {
		return run.DailyWords
	}
	return s.Words
}
