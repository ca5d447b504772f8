package world

import "math/rand"

// Rand is the random source consumed by level generation. Every draw made
// while generating a level goes through one Rand, in a fixed order, so a
// seeded source reproduces the same level.
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// mathRand adapts *rand.Rand to Rand.
type mathRand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) Rand {
	return mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m mathRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Intn(hi-lo+1)
}

func (m mathRand) Float64() float64 {
	return m.r.Float64()
}
