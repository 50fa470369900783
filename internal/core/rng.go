// Package core provides the deterministic building blocks shared by the run
// engine: seeded random sources, string seeding and shuffling.
// It has no external dependencies so that game logic stays pure and testable.
package core

import "math/rand/v2"

// Source produces floats in [0,1). Both the seeded Mulberry32 generator and
// the system-random source satisfy it, so shuffles can be written once.
type Source interface {
	Float64() float64
}

// Mulberry32 is a 32-bit state PRNG. For a given seed it yields the same
// sequence on every platform, which is what makes a Daily run reproducible
// from its date alone.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a generator seeded with seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the generator and returns the next raw 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return t ^ t>>14
}

// Float64 returns a float in [0,1) with 32 bits of precision.
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296.0
}

// SystemSource is a non-deterministic Source backed by math/rand/v2's
// global generator. It is used for Practice runs and scrambling.
type SystemSource struct{}

// Float64 implements Source.
func (SystemSource) Float64() float64 {
	return rand.Float64()
}

// Intn returns an index in [0,n) drawn from src the same way the shuffles
// do: floor(f * n). Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n { // guards float rounding at the top of the range
		i = n - 1
	}
	return i
}
