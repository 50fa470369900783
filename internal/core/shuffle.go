package core

// Shuffle returns a shuffled copy of items using Fisher-Yates, walking from
// the last index down to 1 and swapping with a uniformly chosen index in
// [0, i]. The input slice is never modified.
func Shuffle[T any](items []T, src Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := Intn(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SeededShuffle shuffles items with a fresh Mulberry32 generator seeded with
// seed. Identical inputs always produce identical output.
func SeededShuffle[T any](items []T, seed uint32) []T {
	return Shuffle(items, NewMulberry32(seed))
}
