// Package rng provides the random source injected into generators so that a
// seed reproduces the same level or platform run.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the generators draw from.
type Source interface {
	Intn(n int) int
	Int63() int64
	Float64() float64
}

// New returns a deterministic source for seed
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a source seeded from the clock, plus the seed used
func NewTimeSeeded() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Between returns an integer in [min, max], both inclusive.
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Uniform returns a float in [min, max).
func Uniform(src Source, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}

// Chance returns true with probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
