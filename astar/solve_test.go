package astar_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// openGrid returns an empty rows×cols grid with S top-left and G bottom-right.
func openGrid(t testing.TB, rows, cols int) *grid.Grid {
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	g.SetStart(grid.Location{Row: 0, Column: 0})
	g.SetGoal(grid.Location{Row: rows - 1, Column: cols - 1})

	return g
}

// TestSolve_FiveByFive pins costs and path lengths on the open 5×5 grid.
func TestSolve_FiveByFive(t *testing.T) {
	cases := []struct {
		kind     heuristic.Kind
		diagonal bool
		cost     int
	}{
		{heuristic.Euclidean, false, 8},
		{heuristic.Manhattan, false, 8},
		{heuristic.Chebyshev, false, 8},
		{heuristic.Euclidean, true, 4},
		{heuristic.Chebyshev, true, 4},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/diagonal=%v", tc.kind, tc.diagonal), func(t *testing.T) {
			g := openGrid(t, 5, 5)
			res, err := astar.Solve(g, tc.kind, astar.WithDiagonal(tc.diagonal))
			require.NoError(t, err)

			assert.Equal(t, tc.cost, res.Cost)
			assert.Len(t, res.Path, tc.cost+1)
			assert.NoError(t, astar.ValidatePath(res.Path,
				grid.Location{Row: 0, Column: 0}, grid.Location{Row: 4, Column: 4},
				g.Successors, tc.diagonal))
		})
	}
}

// TestSolve_DiagonalTrace pins the insertion-order tie-break on the open grid.
func TestSolve_DiagonalTrace(t *testing.T) {
	g := openGrid(t, 5, 5)
	res, err := astar.Solve(g, heuristic.Euclidean, astar.WithDiagonal(true))
	require.NoError(t, err)

	assert.Equal(t, []grid.Location{
		{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2},
		{Row: 3, Column: 3}, {Row: 4, Column: 4},
	}, res.Path)
	assert.Equal(t, 4, res.Stats.Expansions)
	assert.Equal(t, "S    \n *   \n  *  \n   * \n    G\n", g.String())
}

// TestSolve_MarksGrid leaves explored and path glyphs behind, never over S/G.
func TestSolve_MarksGrid(t *testing.T) {
	g := openGrid(t, 5, 5)
	res, err := astar.Solve(g, heuristic.Euclidean)
	require.NoError(t, err)

	assert.Equal(t, len(res.Path)-2, g.Count(grid.Path))
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.Goal))
	assert.Equal(t, 25-len(res.Path), g.Count(grid.Explored))

	// a second solve starts from a clean slate
	_, err = astar.Solve(g, heuristic.Chebyshev, astar.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Count(grid.Path))
}

// TestSolve_StartIsGoal returns a single-cell path at cost 0.
func TestSolve_StartIsGoal(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	here := grid.Location{Row: 1, Column: 1}
	g.SetGoal(here)
	g.SetStart(here)

	res, err := astar.Solve(g, heuristic.Euclidean, astar.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{here}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Stats.Expansions)
	assert.Equal(t, 1, res.Stats.Pushes)
	assert.Equal(t, "   \n S \n   \n", g.String())

	node, err := astar.Search(here, func(l grid.Location) bool { return l == here },
		g.Successors, heuristic.NewEuclidean(here), true)
	require.NoError(t, err)
	path, err := astar.ReconstructPath(node)
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{here}, path)
	assert.Zero(t, node.Cost())
}

// TestSolve_NoPath reports ErrNoPath with stats for a sealed goal.
func TestSolve_NoPath(t *testing.T) {
	g, err := grid.ParseLayout([]string{
		"S  #  ",
		"   #  ",
		"   # G",
		"   #  ",
	})
	require.NoError(t, err)

	for _, diagonal := range []bool{false, true} {
		res, err := astar.Solve(g, heuristic.Chebyshev, astar.WithDiagonal(diagonal))
		require.ErrorIs(t, err, astar.ErrNoPath)
		assert.Nil(t, res.Path)
		assert.Equal(t, 12, res.Stats.Expansions)
		assert.Equal(t, 0, g.Count(grid.Path))
	}
}

// TestSolve_ConfigErrors fails before any expansion.
func TestSolve_ConfigErrors(t *testing.T) {
	_, err := astar.Solve(nil, heuristic.Euclidean)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = astar.Solve(g, heuristic.Euclidean)
	assert.ErrorIs(t, err, astar.ErrStartNotSet)

	g.SetStart(grid.Location{})
	_, err = astar.Solve(g, heuristic.Euclidean)
	assert.ErrorIs(t, err, astar.ErrGoalNotSet)

	g.SetGoal(grid.Location{Row: 1, Column: 1})
	_, err = astar.Solve(g, heuristic.Kind(99))
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)

	_, err = astar.Solve(g, heuristic.Euclidean, astar.WithMaxExpansions(-3))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

// TestSolve_OptimalAgainstBFS compares admissible runs with exhaustive BFS
// on seeded random grids: every variant under 4-way movement, Chebyshev
// under 8-way movement.
func TestSolve_OptimalAgainstBFS(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		for _, diagonal := range []bool{false, true} {
			g := openGrid(t, 12, 15)
			require.NoError(t, g.FillRandom(0.3, grid.NewRand(seed)))
			start, _ := g.Start()

			want, bfsErr := bfs.ShortestCost(start, g.IsGoal, g.Successors, diagonal)
			for _, kind := range heuristic.Kinds() {
				if !kind.Admissible(diagonal) {
					continue
				}
				res, err := astar.Solve(g, kind, astar.WithDiagonal(diagonal))
				if errors.Is(bfsErr, bfs.ErrNoPath) {
					assert.ErrorIs(t, err, astar.ErrNoPath, "seed=%d %s", seed, kind)
					continue
				}
				require.NoError(t, err, "seed=%d %s", seed, kind)
				assert.Equal(t, want, res.Cost, "seed=%d %s diagonal=%v", seed, kind, diagonal)
				goal, _ := g.Goal()
				assert.NoError(t, astar.ValidatePath(res.Path, start, goal, g.Successors, diagonal))
			}
		}
	}
}

// TestSolve_ManhattanDiagonalCanOvershoot shows that the inadmissible pairing
// may return a longer path than the optimum.
func TestSolve_ManhattanDiagonalCanOvershoot(t *testing.T) {
	layout := []string{
		"S  ## ",
		"#     ",
		"# # # ",
		"#    #",
		"#  # G",
	}
	g, err := grid.ParseLayout(layout)
	require.NoError(t, err)
	start, _ := g.Start()

	optimal, err := bfs.ShortestCost(start, g.IsGoal, g.Successors, true)
	require.NoError(t, err)
	assert.Equal(t, 5, optimal)

	res, err := astar.Solve(g, heuristic.Manhattan, astar.WithDiagonal(true))
	require.NoError(t, err)
	assert.Greater(t, res.Cost, optimal)

	res, err = astar.Solve(g, heuristic.Chebyshev, astar.WithDiagonal(true))
	require.NoError(t, err)
	assert.Equal(t, optimal, res.Cost)
}

// TestSolve_UserHooksStillRun chains user hooks after grid marking.
func TestSolve_UserHooksStillRun(t *testing.T) {
	g := openGrid(t, 4, 4)
	var seen []grid.Location
	res, err := astar.Solve(g, heuristic.Chebyshev, astar.WithDiagonal(true),
		astar.WithOnExplored(func(l grid.Location) { seen = append(seen, l) }))
	require.NoError(t, err)
	assert.Len(t, seen, res.Stats.Expansions+1)
	assert.Equal(t, grid.Location{Row: 3, Column: 3}, seen[len(seen)-1])
}
