package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Result is the outcome of Solve.
type Result struct {
	Path  []grid.Location // start → goal inclusive; nil when no path exists
	Cost  int             // number of moves; len(Path) - 1
	Stats Stats
}

// Solve searches g from its start marker to its goal marker with the
// heuristic variant kind.
//
// Prior explored/path markers are cleared first. Every explored location is
// marked on g, and on success the path is marked as well; start and goal
// cells keep their glyphs. User OnExplored hooks in opts still run.
//
// Returns ErrNilGrid, ErrStartNotSet or ErrGoalNotSet before any expansion,
// heuristic.ErrUnknownKind for a bad kind, and ErrNoPath (with Stats filled
// in) when the goal is unreachable.
func Solve(g *grid.Grid, kind heuristic.Kind, opts ...Option) (Result, error) {
	return SolveContext(context.Background(), g, kind, opts...)
}

// SolveContext is Solve with cooperative cancellation checked between steps.
func SolveContext(ctx context.Context, g *grid.Grid, kind heuristic.Kind, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return Result{}, ErrStartNotSet
	}
	goal, ok := g.Goal()
	if !ok {
		return Result{}, ErrGoalNotSet
	}
	h, err := heuristic.New(kind, goal)
	if err != nil {
		return Result{}, err
	}

	g.ClearMarkers()
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithOnExplored(func(loc grid.Location) { g.MarkExplored(loc) }))
	all = append(all, opts...)

	e, err := NewEngine(start, g.IsGoal, g.Successors, h, all...)
	if err != nil {
		return Result{}, err
	}
	node, err := e.Run(ctx)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			return Result{Stats: e.Stats()}, err
		}
		return Result{}, err
	}

	path, err := ReconstructPath(node)
	if err != nil {
		return Result{}, err
	}
	g.MarkPath(path)

	return Result{Path: path, Cost: node.Cost(), Stats: e.Stats()}, nil
}
