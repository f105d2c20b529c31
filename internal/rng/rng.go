// Package rng holds the random source used by map generation and the
// weighted-choice helpers built on top of it.
package rng

import "math/rand/v2"

// Source is the randomness the generator needs. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// New creates a deterministic generator seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Choice pairs a value with the probability of selecting it.
type Choice[T any] struct {
	Value T
	Prob  float64
}

// Weighted selects one value with frequency proportional to its probability.
// A single uniform draw is compared against the running sum, so probabilities
// below 0.01 keep their weight. If the draw lands past the total (the
// probabilities sum to less than 1) the last choice wins.
func Weighted[T any](src Source, choices ...Choice[T]) T {
	if len(choices) == 0 {
		panic("rng: Weighted called with no choices")
	}
	u := src.Float64()
	sum := 0.0
	for _, ch := range choices {
		sum += clamp(ch.Prob)
		if u < sum {
			return ch.Value
		}
	}
	return choices[len(choices)-1].Value
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	p = clamp(p)
	return Weighted(src, Choice[bool]{true, p}, Choice[bool]{false, 1 - p})
}

func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
