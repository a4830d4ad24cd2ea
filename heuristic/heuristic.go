package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// New binds the variant k to goal.
// Returns ErrUnknownKind for values outside Kinds().
func New(k Kind, goal grid.Location) (Func, error) {
	switch k {
	case Euclidean:
		return NewEuclidean(goal), nil
	case Manhattan:
		return NewManhattan(goal), nil
	case Chebyshev:
		return NewChebyshev(goal), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}

// NewEuclidean returns sqrt(dr² + dc²) toward goal.
// Overestimates a unit-cost diagonal step as √2.
func NewEuclidean(goal grid.Location) Func {
	return func(loc grid.Location) float64 {
		dr, dc := deltas(goal, loc)

		return math.Sqrt(dr*dr + dc*dc)
	}
}

// NewManhattan returns |dr| + |dc| toward goal.
// Overestimates once diagonal moves are allowed.
func NewManhattan(goal grid.Location) Func {
	return func(loc grid.Location) float64 {
		dr, dc := deltas(goal, loc)

		return dr + dc
	}
}

// NewChebyshev returns max(|dr|, |dc|) toward goal, computed as
// (dr + dc) - min(dr, dc).
func NewChebyshev(goal grid.Location) Func {
	return func(loc grid.Location) float64 {
		dr, dc := deltas(goal, loc)

		return (dr + dc) - math.Min(dr, dc)
	}
}

// deltas returns the absolute row and column distances.
func deltas(goal, loc grid.Location) (float64, float64) {
	return math.Abs(float64(goal.Row - loc.Row)), math.Abs(float64(goal.Column - loc.Column))
}
