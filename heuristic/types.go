package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownKind indicates an unrecognized heuristic variant.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Func estimates the remaining cost from loc to the goal it was bound to.
// Implementations are deterministic, side-effect free and never negative.
type Func func(loc grid.Location) float64

// Kind selects one heuristic variant.
type Kind int

const (
	// Euclidean is the straight-line distance.
	Euclidean Kind = iota
	// Manhattan is the 4-way taxicab distance.
	Manhattan
	// Chebyshev is the 8-way king-move distance.
	Chebyshev
)

var kindNames = [...]string{
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Chebyshev: "chebyshev",
}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{Euclidean, Manhattan, Chebyshev}
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, s, strings.Join(kindNames[:], ", "))
}

// Admissible reports whether k never overestimates the remaining cost under
// the given movement model with uniform step cost 1. A diagonal move costs 1,
// so only Chebyshev stays admissible once diagonals are allowed.
func (k Kind) Admissible(diagonal bool) bool {
	switch k {
	case Chebyshev:
		return true
	case Euclidean, Manhattan:
		return !diagonal
	default:
		return false
	}
}
