package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Search runs A* from start to completion and returns the goal node.
//
// allowDiagonal selects the movement model passed to successors; it takes
// precedence over any WithDiagonal in opts.
//
// Returns ErrNoPath when the goal is unreachable, ErrNilFunc for nil
// arguments, ErrOptionViolation for invalid options and ErrExpansionLimit
// when WithMaxExpansions cuts the search short.
//
// Complexity:
//
//   - Time:  O(N log N), N = pushes ≤ cells × (moves per cell)
//   - Space: O(N) for the frontier, the best-cost table and the node forest
func Search(
	start grid.Location,
	isGoal grid.GoalFunc,
	successors grid.SuccessorFunc,
	h heuristic.Func,
	allowDiagonal bool,
	opts ...Option,
) (*Node, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithDiagonal(allowDiagonal))

	e, err := NewEngine(start, isGoal, successors, h, all...)
	if err != nil {
		return nil, err
	}

	return e.Run(context.Background())
}

// SearchSpace is Search with the goal test and successor function taken
// from space.
func SearchSpace(
	space grid.Space,
	start grid.Location,
	h heuristic.Func,
	allowDiagonal bool,
	opts ...Option,
) (*Node, error) {
	if space == nil {
		return nil, ErrNilFunc
	}

	return Search(start, space.IsGoal, space.Successors, h, allowDiagonal, opts...)
}
