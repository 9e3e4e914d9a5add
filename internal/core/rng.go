package core

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a deterministic PCG-backed generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// TimeSeed derives a seed from the wall clock for runs without an explicit seed.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// SeedOrNow returns seed unless it is zero, in which case a time-derived seed
// is returned instead.
func SeedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return TimeSeed()
}
