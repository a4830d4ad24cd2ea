// Package grid provides a mutable occupancy grid with a deterministic
// successor contract for informed search. It supports:
//
//   - 4- or 8-directional successor generation
//   - Unique start/goal markers with silent out-of-bounds rejection
//   - Block editing that never disturbs start/goal
//   - Presentational explored/path markers
//
// Cells are stored row-major in a single slice.
package grid

// Grid is a rows×columns occupancy grid.
// The zero value is not usable; construct with New or ParseLayout.
type Grid struct {
	rows, columns int
	cells         []CellState // row-major: cells[r*columns+c]

	start, goal       Location
	hasStart, hasGoal bool
}

// New constructs an empty rows×columns grid with no start or goal.
// Returns ErrEmptyGrid if rows < 1 or columns < 1.
// Complexity: O(rows×columns) time and memory.
func New(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]CellState, rows*columns),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether loc lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Column >= 0 && loc.Column < g.columns
}

// index maps loc to a row-major index: Row*columns + Column.
func (g *Grid) index(loc Location) int {
	return loc.Row*g.columns + loc.Column
}

// Coordinate converts a row-major index back to a Location.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Location {
	return Location{Row: idx / g.columns, Column: idx % g.columns}
}

// State returns the cell state at loc, or ErrOutOfBounds.
func (g *Grid) State(loc Location) (CellState, error) {
	if !g.InBounds(loc) {
		return Empty, ErrOutOfBounds
	}

	return g.cells[g.index(loc)], nil
}

// Walkable reports whether loc is in bounds and not blocked.
func (g *Grid) Walkable(loc Location) bool {
	return g.InBounds(loc) && g.cells[g.index(loc)].Walkable()
}

// Start returns the start location and whether one is set.
func (g *Grid) Start() (Location, bool) { return g.start, g.hasStart }

// Goal returns the goal location and whether one is set.
func (g *Grid) Goal() (Location, bool) { return g.goal, g.hasGoal }

// IsGoal reports whether loc equals the configured goal.
// Always false while no goal is set.
func (g *Grid) IsGoal(loc Location) bool {
	return g.hasGoal && loc == g.goal
}

// Successors returns all in-bounds, non-blocked neighbours of loc.
// Cardinal neighbours come first in the order left, down, right, up;
// when diagonal is true, down-left, down-right, up-left and up-right follow.
// A diagonal neighbour only needs its own cell to be walkable.
// Complexity: O(1).
func (g *Grid) Successors(loc Location, diagonal bool) []Location {
	out := make([]Location, 0, 8)
	for _, d := range cardinalOffsets {
		next := Location{Row: loc.Row + d[0], Column: loc.Column + d[1]}
		if g.Walkable(next) {
			out = append(out, next)
		}
	}
	if !diagonal {
		return out
	}
	for _, d := range diagonalOffsets {
		next := Location{Row: loc.Row + d[0], Column: loc.Column + d[1]}
		if g.Walkable(next) {
			out = append(out, next)
		}
	}

	return out
}

// SetStart moves the start marker to loc.
// Out-of-bounds locations are ignored and false is returned.
// The previous start cell, if any, is released. Start and goal may share a
// cell; the cell then shows whichever marker was placed last.
func (g *Grid) SetStart(loc Location) bool {
	if !g.InBounds(loc) {
		return false
	}
	if g.hasStart {
		g.release(g.start, Start)
	}
	g.start, g.hasStart = loc, true
	g.cells[g.index(loc)] = Start

	return true
}

// SetGoal moves the goal marker to loc. Semantics mirror SetStart.
func (g *Grid) SetGoal(loc Location) bool {
	if !g.InBounds(loc) {
		return false
	}
	if g.hasGoal {
		g.release(g.goal, Goal)
	}
	g.goal, g.hasGoal = loc, true
	g.cells[g.index(loc)] = Goal

	return true
}

// release clears a marker glyph being moved away from loc. A cell still
// holding the other marker shows that marker again.
func (g *Grid) release(loc Location, st CellState) {
	i := g.index(loc)
	if g.cells[i] != st {
		return
	}
	switch {
	case st == Start && g.hasGoal && g.goal == loc:
		g.cells[i] = Goal
	case st == Goal && g.hasStart && g.start == loc:
		g.cells[i] = Start
	default:
		g.cells[i] = Empty
	}
}

// Block marks loc as blocked. Start, goal and already blocked cells are
// left unchanged. Reports whether the cell changed.
func (g *Grid) Block(loc Location) bool {
	if !g.InBounds(loc) {
		return false
	}
	i := g.index(loc)
	switch g.cells[i] {
	case Start, Goal, Blocked:
		return false
	}
	g.cells[i] = Blocked

	return true
}

// ClearBlock makes a blocked cell walkable again. Reports whether the cell changed.
func (g *Grid) ClearBlock(loc Location) bool {
	if !g.InBounds(loc) {
		return false
	}
	i := g.index(loc)
	if g.cells[i] != Blocked {
		return false
	}
	g.cells[i] = Empty

	return true
}

// ToggleBlock flips loc between blocked and walkable.
// Start and goal cells are refused. Reports whether the cell changed.
func (g *Grid) ToggleBlock(loc Location) bool {
	if st, err := g.State(loc); err == nil && st == Blocked {
		return g.ClearBlock(loc)
	}

	return g.Block(loc)
}

// MarkExplored sets the explored marker on loc.
// Start, goal, blocked and path cells are left unchanged.
func (g *Grid) MarkExplored(loc Location) bool {
	if !g.InBounds(loc) {
		return false
	}
	i := g.index(loc)
	if g.cells[i] != Empty {
		return false
	}
	g.cells[i] = Explored

	return true
}

// MarkPath sets the path marker on every location of path.
// Start, goal and blocked cells keep their state.
func (g *Grid) MarkPath(path []Location) {
	for _, loc := range path {
		if !g.InBounds(loc) {
			continue
		}
		i := g.index(loc)
		if g.cells[i] == Empty || g.cells[i] == Explored {
			g.cells[i] = Path
		}
	}
}

// ClearMarkers resets every explored or path cell to empty.
// Complexity: O(rows×columns).
func (g *Grid) ClearMarkers() {
	for i, st := range g.cells {
		if st.marker() {
			g.cells[i] = Empty
		}
	}
}

// Reset empties every cell and unsets start and goal.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.hasStart, g.hasGoal = false, false
	g.start, g.goal = Location{}, Location{}
}

// Count returns the number of cells in state st.
func (g *Grid) Count(st CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == st {
			n++
		}
	}

	return n
}
