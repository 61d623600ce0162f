package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for placement; *rand.Rand satisfies it
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source; seed 0 seeds from the clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
