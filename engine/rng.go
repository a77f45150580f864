package engine

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking. Every
// stochastic decision in the engine flows through one of these methods, so
// tests can seed an RNG and assert exact outcomes.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n). n <= 0 returns 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.pos++
	return r.src.Intn(n)
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	r.pos++
	return r.src.Intn(sides) + 1
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	r.pos++
	return r.src.Float64()
}

// Chance returns true with probability p (clamped to [0, 1]).
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float() < p
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
