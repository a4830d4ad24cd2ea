package astar

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// ReconstructPath walks n's parent chain and returns the locations ordered
// start → n inclusive. A parentless node yields a single-element path.
//
// Returns ErrNilNode when n is nil; callers must check the search outcome first.
//
// Complexity: O(n.Cost()) time and memory.
func ReconstructPath(n *Node) ([]grid.Location, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	path := make([]grid.Location, 0, n.Cost()+1)
	for cur := n; cur != nil; cur = cur.Parent() {
		path = append(path, cur.Location())
	}
	slices.Reverse(path)

	return path, nil
}

// ValidatePath checks that path is a walk from start to goal in which every
// step is a single move under successors and no location repeats.
// Every failure wraps ErrInvalidPath.
//
// Complexity: O(len(path)) successor calls.
func ValidatePath(
	path []grid.Location,
	start, goal grid.Location,
	successors grid.SuccessorFunc,
	diagonal bool,
) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if successors == nil {
		return ErrNilFunc
	}
	if path[0] != start {
		return fmt.Errorf("%w: starts at %s, want %s", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("%w: ends at %s, want %s", ErrInvalidPath, last, goal)
	}

	seen := mapset.New[grid.Location]()
	seen.Put(path[0])
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if seen.Has(cur) {
			return fmt.Errorf("%w: %s repeats at step %d", ErrInvalidPath, cur, i)
		}
		seen.Put(cur)
		if !slices.Contains(successors(prev, diagonal), cur) {
			return fmt.Errorf("%w: %s → %s is not a single move", ErrInvalidPath, prev, cur)
		}
	}

	return nil
}
