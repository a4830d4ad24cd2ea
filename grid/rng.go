package grid

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is NOT goroutine-safe; do not share the result.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// FillRandom blocks each empty cell independently with probability density.
// Start, goal and already blocked cells are untouched; markers are cleared
// first. A nil rng falls back to NewRand(0).
//
// Returns ErrBadDensity if density is outside [0, 1].
//
// Complexity: O(rows×columns).
func (g *Grid) FillRandom(density float64, rng *rand.Rand) error {
	if density < 0 || density > 1 {
		return ErrBadDensity
	}
	if rng == nil {
		rng = NewRand(0)
	}

	g.ClearMarkers()
	for i, st := range g.cells {
		if st != Empty {
			continue
		}
		if rng.Float64() < density {
			g.cells[i] = Blocked
		}
	}

	return nil
}
