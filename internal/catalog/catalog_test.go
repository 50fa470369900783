package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const oceanJSON = `{"Ocean": [{"word": "whale"}, {"word": "sea turtle"}]}`

func TestParsePreservesThemeOrder(t *testing.T) {
	data := `{
	"Zoo": [{"word": "lion"}],
	"Apple": [{"word": "fuji"}, {"word": 7}, {"name": "x"}, {"word": "gala"}],
	"Moon": "not a list"
}`
	c, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := c.Themes(), []string{"Zoo", "Apple", "Moon"}; !slices.Equal(got, want) {
		t.Errorf("Themes() = %v, want %v", got, want)
	}
	words, _ := c.Words("Apple")
	if want := []string{"fuji", "gala"}; !slices.Equal(words, want) {
		t.Errorf("Apple words = %v, want %v", words, want)
	}
	if words, ok := c.Words("Moon"); !ok || len(words) != 0 {
		t.Errorf("Moon should exist with no words, got %v %v", words, ok)
	}
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	c, err := Parse([]byte(`{"Ocean": [{"word": "whale"}, "junk", null, [1], {"word": 5}, {"word": "kelp"}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	words, _ := c.Words("Ocean")
	if want := []string{"whale", "kelp"}; !slices.Equal(words, want) {
		t.Errorf("Ocean words = %v, want %v", words, want)
	}
}

func TestParseRepeatedThemeLastWins(t *testing.T) {
	data := `{"Ocean": [{"word": "whale"}], "Zoo": [{"word": "lion"}], "Ocean": [{"word": "kelp"}]}`
	c, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := c.Themes(), []string{"Ocean", "Zoo"}; !slices.Equal(got, want) {
		t.Errorf("Themes() = %v, want %v", got, want)
	}
	words, _ := c.Words("Ocean")
	if want := []string{"kelp"}; !slices.Equal(words, want) {
		t.Errorf("Ocean words = %v, want %v", words, want)
	}
}

func TestParseYAML(t *testing.T) {
	data := `
Weather:
  - word: rainbow
  - word: heat wave
Kitchen:
  - word: whisk
  - word: 12
`
	c, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := c.Themes(), []string{"Weather", "Kitchen"}; !slices.Equal(got, want) {
		t.Errorf("Themes() = %v, want %v", got, want)
	}
	if got := c.Pool(""); !slices.Equal(got, []string{"rainbow", "heat wave", "whisk"}) {
		t.Errorf("Pool = %v", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte(`{"Ocean": [`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := Parse([]byte(`- just\n- a list`)); err == nil {
		t.Error("expected error for a top-level list")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	if err := os.WriteFile(path, []byte(oceanJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Has("Ocean") || c.WordCount() != 2 {
		t.Errorf("unexpected catalog: %v", c.Themes())
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog has no themes")
	}
	if c.Themes()[0] != "Ocean" {
		t.Errorf("first theme = %q, want Ocean", c.Themes()[0])
	}
	for _, name := range c.Themes() {
		if words, _ := c.Words(name); len(words) < 10 {
			t.Errorf("theme %s has only %d words", name, len(words))
		}
	}
}

func TestPoolFallsBackToWholeCatalog(t *testing.T) {
	c := New(
		Theme{Name: "A", Words: []string{"one", "two"}},
		Theme{Name: "B", Words: []string{"three"}},
	)
	want := []string{"one", "two", "three"}
	for _, theme := range []string{"", RandomTheme, "Unknown"} {
		if got := c.Pool(theme); !slices.Equal(got, want) {
			t.Errorf("Pool(%q) = %v, want %v", theme, got, want)
		}
	}
	if got := c.Pool("B"); !slices.Equal(got, []string{"three"}) {
		t.Errorf("Pool(B) = %v", got)
	}
}

func TestPickCount(t *testing.T) {
	c := Default()
	if got := c.PickSeeded(10, "Ocean", 7); len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}

	small := New(Theme{Name: "Tiny", Words: []string{"a", "b", "c"}})
	if got := small.PickSeeded(10, "Tiny", 7); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
	if got := New(Theme{Name: "Empty"}).PickSeeded(10, "Empty", 1); len(got) != 0 {
		t.Errorf("expected empty pick, got %v", got)
	}
}

func TestPickSeededDeterministic(t *testing.T) {
	c := Default()
	a := c.PickSeeded(10, "", 2024)
	b := c.PickSeeded(10, "", 2024)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestDailyTheme(t *testing.T) {
	c := New(Theme{Name: "A"}, Theme{Name: "B"}, Theme{Name: "C"})
	tests := map[string]string{
		"2025-11-01": "C", // seed % 3 == 2
		"2024-01-15": "A", // seed % 3 == 0
	}
	for date, want := range tests {
		got, err := c.DailyTheme(date)
		if err != nil {
			t.Fatalf("DailyTheme(%s): %v", date, err)
		}
		if got != want {
			t.Errorf("DailyTheme(%s) = %s, want %s", date, got, want)
		}
	}

	if _, err := New().DailyTheme("2025-11-01"); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestDailySingleThemeScenario(t *testing.T) {
	c, err := Parse([]byte(oceanJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	theme, words, err := c.Daily("2025-11-01", 10)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if theme != "Ocean" {
		t.Errorf("theme = %s, want Ocean", theme)
	}
	if want := []string{"whale", "sea turtle"}; !slices.Equal(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}

	_, again, _ := c.Daily("2025-11-01", 10)
	if !slices.Equal(words, again) {
		t.Errorf("second call gave %v", again)
	}
}
