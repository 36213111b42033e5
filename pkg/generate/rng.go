package generate

import (
	"math/rand/v2"
	"time"
)

// SeedOrNow returns seed unchanged unless it is zero, in which case a seed
// is derived from the current time with nanosecond resolution so repeated
// runs differ.
func SeedOrNow(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// NewRand returns a PCG-backed generator for seed.
// A zero seed is replaced through SeedOrNow; callers that need to report the
// effective seed should resolve it with SeedOrNow first.
//
// The returned generator is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	seed = SeedOrNow(seed)
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
