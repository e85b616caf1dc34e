package barigueira

import "math/rand"

// RandSource supplies uniform integer draws.
type RandSource interface {
	// IntRange returns a uniform integer in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
}

// RandFactory creates a random source for a session seed.
type RandFactory func(seed int64) RandSource

// mathRand is the default RandSource backed by math/rand.
type mathRand struct {
	r *rand.Rand
}

// NewRand creates a seeded RandSource.
func NewRand(seed int64) RandSource {
	//nolint:gosec // Game randomness, not security sensitive
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Intn(hi-lo+1)
}
