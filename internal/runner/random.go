package runner

import "math/rand"

// Rand is the narrow random source used for obstacle sizes and cloud
// resets. Float64 must return values in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
