// SPDX-License-Identifier: MIT
// Package: fairrand/source
//
// stream.go - deterministic uniform streams.
//
// Policy:
//   • seed == 0 selects DefaultSeed; any other seed is used verbatim.
//   • Derive consumes one value of the parent and mixes it with a stream id,
//     so repeated derivations with the same id still differ.
//   • Range helpers never panic: an empty range returns its lower bound.

package source

import "math/rand/v2"

// DefaultSeed is used when a caller passes seed 0.
const DefaultSeed uint64 = 1

// Stream is the uniform source every generator draws from. Its Uint64
// method makes every Stream a math/rand/v2 Source.
type Stream interface {
	Uint64() uint64
	// IntRange returns an int in [min, max).
	IntRange(min, max int) int
	// IntN returns an int in [0, n).
	IntN(n int) int
	// FloatRange returns a float64 in [min, max).
	FloatRange(min, max float64) float64
	// Float returns a float64 in [0, 1).
	Float() float64
	// Bool returns true with probability chance.
	Bool(chance float64) bool
	// Seed resets the stream.
	Seed(seed uint64)
}

// Rand is a PCG-backed Stream.
type Rand struct {
	pcg  *rand.PCG
	r    *rand.Rand
	seed uint64
}

// NewRand returns a stream seeded with seed (0 selects DefaultSeed).
func NewRand(seed uint64) *Rand {
	pcg := rand.NewPCG(0, 0)
	s := &Rand{pcg: pcg, r: rand.New(pcg)}
	s.Seed(seed)

	return s
}

// Seed resets the stream; the same seed always replays the same values.
func (s *Rand) Seed(seed uint64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	s.seed = seed
	s.pcg.Seed(seed, deriveSeed(seed, 0))
}

// SeedValue returns the effective seed.
func (s *Rand) SeedValue() uint64 { return s.seed }

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Rand) Uint64() uint64 { return s.r.Uint64() }

// IntRange returns an int in [min, max), or min when max <= min.
func (s *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}

	return min + s.r.IntN(max-min)
}

// IntN returns an int in [0, n), or 0 when n <= 0.
func (s *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}

	return s.r.IntN(n)
}

// FloatRange returns a float64 in [min, max), or min when max <= min.
func (s *Rand) FloatRange(min, max float64) float64 {
	if !(max > min) {
		return min
	}

	return min + s.r.Float64()*(max-min)
}

// Float returns a float64 in [0, 1).
func (s *Rand) Float() float64 { return s.r.Float64() }

// Bool returns true with probability chance; chance <= 0 never, >= 1 always.
func (s *Rand) Bool(chance float64) bool {
	return s.r.Float64() < chance
}

// Derive returns an independent stream for stream id. A nil parent derives
// from DefaultSeed without consuming anything.
func Derive(parent Stream, stream uint64) *Rand {
	seed := DefaultSeed
	if parent != nil {
		seed = parent.Uint64()
	}

	return NewRand(deriveSeed(seed, stream))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer. A zero result is remapped so it never aliases DefaultSeed.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}

	return x
}
