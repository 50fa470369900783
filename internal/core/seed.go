package core

// FNV-1a 32-bit parameters.
const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// SeedFromString hashes s with 32-bit FNV-1a over its code points.
// hash/fnv works on UTF-8 bytes, which would give different seeds for
// non-ASCII theme names, so the loop is spelled out here.
func SeedFromString(s string) uint32 {
	h := fnvOffset32
	for _, r := range s {
		h ^= uint32(r)
		h *= fnvPrime32
	}
	return h
}

// DailyWordSeed derives the word-order seed for a Daily run. Hashing the date
// together with the theme keeps theme choice and word order independent.
func DailyWordSeed(date, theme string) uint32 {
	return SeedFromString(date + "::" + theme)
}
