package mines

import (
	"math/rand"
	"time"
)

// Random is the source used for mine placement.
// *rand.Rand satisfies it; tests substitute a queued fake.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// NewRandom returns a seeded math/rand source.
// A zero seed means "use the current time".
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
