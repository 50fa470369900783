// Package catalog holds the themed word list a run draws from and the
// selection rules for building a run's word order.
package catalog

import (
	"errors"
	"slices"

	"github.com/vovakirdan/letra/internal/core"
)

// RandomTheme is the pseudo-theme offered by pickers. It is never stored in a
// catalog, so selecting it falls through to the whole-catalog pool.
const RandomTheme = "Random"

// ErrEmpty is returned when an operation needs at least one theme.
var ErrEmpty = errors.New("catalog: no themes")

// Theme is a named, ordered group of words.
type Theme struct {
	Name  string
	Words []string
}

// Catalog is an immutable mapping from theme name to words that remembers
// the order themes were declared in. Daily theme selection indexes into that
// order, so it must be stable for a given source file.
type Catalog struct {
	themes []Theme
	index  map[string]int
}

// New builds a catalog from themes in the given order. A repeated theme name
// keeps the position of its first declaration and the words of its last.
func New(themes ...Theme) *Catalog {
	c := &Catalog{index: make(map[string]int, len(themes))}
	for _, th := range themes {
		if i, ok := c.index[th.Name]; ok {
			c.themes[i].Words = slices.Clone(th.Words)
			continue
		}
		c.index[th.Name] = len(c.themes)
		c.themes = append(c.themes, Theme{Name: th.Name, Words: slices.Clone(th.Words)})
	}
	return c
}

// Themes returns theme names in declared order.
func (c *Catalog) Themes() []string {
	names := make([]string, len(c.themes))
	for i, th := range c.themes {
		names[i] = th.Name
	}
	return names
}

// Len returns the number of themes.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// Has reports whether theme is declared in the catalog.
func (c *Catalog) Has(theme string) bool {
	_, ok := c.index[theme]
	return ok
}

// Words returns a copy of one theme's words.
func (c *Catalog) Words(theme string) ([]string, bool) {
	i, ok := c.index[theme]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.themes[i].Words), true
}

// WordCount returns the total number of words across all themes.
func (c *Catalog) WordCount() int {
	n := 0
	for _, th := range c.themes {
		n += len(th.Words)
	}
	return n
}

// Pool returns the candidate words for theme. A theme that is empty or not
// in the catalog (including RandomTheme) yields every theme's words
// concatenated in declared order.
func (c *Catalog) Pool(theme string) []string {
	if theme != "" {
		if words, ok := c.Words(theme); ok {
			return words
		}
	}
	pool := make([]string, 0, c.WordCount())
	for _, th := range c.themes {
		pool = append(pool, th.Words...)
	}
	return pool
}

// Pick shuffles the pool for theme with src and returns the first
// min(count, len(pool)) words. An empty pool gives an empty result.
func (c *Catalog) Pick(count int, theme string, src core.Source) []string {
	pool := core.Shuffle(c.Pool(theme), src)
	if count < 0 {
		count = 0
	}
	return pool[:min(count, len(pool))]
}

// PickSeeded is Pick with a Mulberry32 generator seeded with seed.
func (c *Catalog) PickSeeded(count int, theme string, seed uint32) []string {
	return c.Pick(count, theme, core.NewMulberry32(seed))
}

// DailyTheme selects the theme for date: the bare date seed modulo the
// number of themes.
func (c *Catalog) DailyTheme(date string) (string, error) {
	if len(c.themes) == 0 {
		return "", ErrEmpty
	}
	seed := core.SeedFromString(date)
	return c.themes[seed%uint32(len(c.themes))].Name, nil
}

// Daily returns the theme and word order for date. Both are pure functions of
// the date and the catalog contents.
func (c *Catalog) Daily(date string, count int) (string, []string, error) {
	theme, err := c.DailyTheme(date)
	if err != nil {
		return "", nil, err
	}
	return theme, c.PickSeeded(count, theme, core.DailyWordSeed(date, theme)), nil
}
