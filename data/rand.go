package data

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns the generator shared by initialization, splitting and
// shuffling. A zero seed is replaced with the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
