package core

import (
	"slices"
	"testing"
)

func TestSeedFromString(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 2166136261},
		{"a", 3826002220},
		{"2025-11-01", 2187776141},
		{"2024-01-15", 1396065120},
		{"2025-11-01::Ocean", 3477079225},
	}

	for _, tt := range tests {
		if got := SeedFromString(tt.in); got != tt.want {
			t.Errorf("SeedFromString(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDailyWordSeed(t *testing.T) {
	if got, want := DailyWordSeed("2025-11-01", "Ocean"), uint32(3477079225); got != want {
		t.Errorf("DailyWordSeed = %d, want %d", got, want)
	}
	if DailyWordSeed("2025-11-01", "Ocean") == SeedFromString("2025-11-01") {
		t.Error("word seed should differ from the theme seed")
	}
}

func TestSeededShuffleKnownOrder(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := SeededShuffle(in, 42)
	want := []int{0, 7, 3, 5, 2, 1, 8, 9, 4, 6}
	if !slices.Equal(got, want) {
		t.Errorf("SeededShuffle = %v, want %v", got, want)
	}
	if !slices.Equal(in, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Error("input slice was modified")
	}
}

func TestSeededShuffleDeterminism(t *testing.T) {
	words := []string{"whale", "sea turtle", "coral", "kelp", "octopus"}
	a := SeededShuffle(words, SeedFromString("2025-11-01::Ocean"))
	b := SeededShuffle(words, SeedFromString("2025-11-01::Ocean"))
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f"}
	out := Shuffle(in, SystemSource{})
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if !slices.Equal(sorted, in) {
		t.Errorf("Shuffle lost elements: %v", out)
	}
}

func TestShuffleEmpty(t *testing.T) {
	if got := Shuffle([]int{}, SystemSource{}); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
	if got := SeededShuffle[int](nil, 1); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2025-11-01") {
		t.Error("2025-11-01 should be valid")
	}
	for _, s := range []string{"", "2025-13-01", "2025-1-1", "yesterday"} {
		if ValidDate(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}
