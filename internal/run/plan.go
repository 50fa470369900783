package run

import (
	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/core"
)

// Plan chooses the words for a run described by cfg and returns the config
// with the resolved theme.
//
// Daily runs derive theme and order from cfg.Date and ignore count and src.
// Other modes draw count words from the theme pool using src, or the system
// random source when src is nil. An empty catalog or theme yields no words.
func Plan(c *catalog.Catalog, cfg Config, count int, src core.Source) (Config, []string) {
	cfg = cfg.normalized()
	if cfg.Mode == ModeDaily {
		theme, words, err := c.Daily(cfg.Date, DailyWords)
		if err != nil {
			cfg.Theme = ""
			return cfg, nil
		}
		cfg.Theme = theme
		return cfg, words
	}

	if src == nil {
		src = core.SystemSource{}
	}
	if cfg.Theme == catalog.RandomTheme {
		cfg.Theme = ""
	}
	return cfg, c.Pick(count, cfg.Theme, src)
}
