package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

func loc(r, c int) grid.Location { return grid.Location{Row: r, Column: c} }

func mustLayout(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseLayout(lines)
	require.NoError(t, err)

	return g
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(loc(0, 0), nil, nil)
	assert.ErrorIs(t, err, bfs.ErrNilFunc)

	g := mustLayout(t, "S G")
	_, err = bfs.Search(loc(0, 0), nil, g.Successors, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.ShortestCost(loc(0, 0), nil, g.Successors, false)
	assert.ErrorIs(t, err, bfs.ErrNilFunc)
}

// TestSearch_SingleCell covers the trivial one-cell grid.
func TestSearch_SingleCell(t *testing.T) {
	g := mustLayout(t, "S")
	res, err := bfs.Search(loc(0, 0), nil, g.Successors)
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{loc(0, 0)}, res.Order)
	assert.Equal(t, 0, res.Depth[loc(0, 0)])
	assert.False(t, res.Found)
}

// TestSearch_OrderAndDepths pins the visit sequence on an open 3×3 grid.
func TestSearch_OrderAndDepths(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	res, err := bfs.Search(loc(1, 1), nil, g.Successors)
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{
		loc(1, 1),
		loc(1, 0), loc(2, 1), loc(1, 2), loc(0, 1),
		loc(2, 0), loc(0, 0), loc(2, 2), loc(0, 2),
	}, res.Order)
	assert.Equal(t, 2, res.Depth[loc(0, 0)])
	assert.Len(t, res.Depth, 9)

	res, err = bfs.Search(loc(1, 1), nil, g.Successors, bfs.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth[loc(0, 0)])
}

// TestSearch_GoalStopsEarly stops at the first goal visit.
func TestSearch_GoalStopsEarly(t *testing.T) {
	g := mustLayout(t,
		"S   ",
		"    ",
		"   G",
	)
	start, _ := g.Start()
	res, err := bfs.Search(start, g.IsGoal, g.Successors)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, loc(2, 3), res.Goal)
	assert.Equal(t, loc(2, 3), res.Order[len(res.Order)-1])

	path, err := res.PathTo(res.Goal)
	require.NoError(t, err)
	assert.Len(t, path, 6)
	assert.Equal(t, start, path[0])
}

// TestShortestCost covers both movement models and unreachable goals.
func TestShortestCost(t *testing.T) {
	g := mustLayout(t,
		"S # ",
		"  # ",
		"    ",
		"  #G",
	)
	start, _ := g.Start()

	cost, err := bfs.ShortestCost(start, g.IsGoal, g.Successors, false)
	require.NoError(t, err)
	assert.Equal(t, 6, cost)

	cost, err = bfs.ShortestCost(start, g.IsGoal, g.Successors, true)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)

	sealed := mustLayout(t,
		"S#",
		"#G",
	)
	start, _ = sealed.Start()
	_, err = bfs.ShortestCost(start, sealed.IsGoal, sealed.Successors, false)
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	// diagonal squeezes between the two blocks
	cost, err = bfs.ShortestCost(start, sealed.IsGoal, sealed.Successors, true)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
}

// TestMaxDepth limits exploration depth.
func TestMaxDepth(t *testing.T) {
	g, err := grid.New(1, 6)
	require.NoError(t, err)

	res, err := bfs.Search(loc(0, 0), nil, g.Successors, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{loc(0, 0), loc(0, 1), loc(0, 2)}, res.Order)

	_, err = res.PathTo(loc(0, 5))
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	res, err = bfs.Search(loc(0, 0), nil, g.Successors, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
}

// TestHooks checks enqueue/visit callbacks and visit aborts.
func TestHooks(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	var enq []grid.Location
	stop := errors.New("stop")
	res, err := bfs.Search(loc(0, 0), nil, g.Successors,
		bfs.WithOnEnqueue(func(l grid.Location, _ int) { enq = append(enq, l) }),
		bfs.WithOnVisit(func(l grid.Location, d int) error {
			if d == 1 {
				return stop
			}
			return nil
		}),
		bfs.WithOnVisit(nil),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []grid.Location{loc(0, 0), loc(1, 0), loc(0, 1)}, enq)
	assert.Len(t, res.Order, 2)
}

// TestContextCancel aborts a search whose context is already done.
func TestContextCancel(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bfs.Search(loc(0, 0), nil, g.Successors, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
