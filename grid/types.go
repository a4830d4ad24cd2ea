// Package grid defines core types, glyphs, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("grid: location out of bounds")
	// ErrBadDensity indicates a random fill density outside [0, 1].
	ErrBadDensity = errors.New("grid: density must be within [0, 1]")
	// ErrBadGlyph indicates an unknown character in an ASCII layout.
	ErrBadGlyph = errors.New("grid: unknown layout glyph")
	// ErrDuplicateMarker indicates more than one start or goal in a layout.
	ErrDuplicateMarker = errors.New("grid: duplicate start or goal marker")
)

// DefaultDensity is the blocking probability used by random fills
// when the caller has no preference.
const DefaultDensity = 0.2

// Location is a (Row, Column) coordinate. It is a value type and
// compares by value, so it can be used directly as a map key.
type Location struct {
	Row    int
	Column int
}

// String formats the location as "(row,column)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Column)
}

// SuccessorFunc returns the locations reachable in one move from loc.
// diagonal selects 8-directional instead of 4-directional movement.
type SuccessorFunc func(loc Location, diagonal bool) []Location

// GoalFunc reports whether loc satisfies the goal test.
type GoalFunc func(loc Location) bool

// Space is the collaborator contract a search engine needs from a grid.
// *Grid satisfies it.
type Space interface {
	Successors(loc Location, diagonal bool) []Location
	IsGoal(loc Location) bool
}

// CellState is the occupancy of a single grid cell.
type CellState uint8

const (
	// Empty is a walkable cell.
	Empty CellState = iota
	// Blocked is an obstacle; never a successor.
	Blocked
	// Start marks the unique start cell.
	Start
	// Goal marks the unique goal cell.
	Goal
	// Explored marks a cell popped by the search (presentational).
	Explored
	// Path marks a cell on the reconstructed path (presentational).
	Path
)

// Layout glyphs used by String and ParseLayout.
const (
	GlyphEmpty    = ' '
	GlyphBlocked  = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphExplored = '.'
	GlyphPath     = '*'
)

// Glyph returns the ASCII character used to render s.
func (s CellState) Glyph() rune {
	switch s {
	case Blocked:
		return GlyphBlocked
	case Start:
		return GlyphStart
	case Goal:
		return GlyphGoal
	case Explored:
		return GlyphExplored
	case Path:
		return GlyphPath
	default:
		return GlyphEmpty
	}
}

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Explored:
		return "explored"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Walkable reports whether a search may step onto a cell in state s.
func (s CellState) Walkable() bool { return s != Blocked }

// marker reports whether s is a presentational marker.
func (s CellState) marker() bool { return s == Explored || s == Path }

// Neighbour offsets as {dRow, dColumn}; the order is part of the contract.
var (
	// left, down, right, up
	cardinalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	// down-left, down-right, up-left, up-right
	diagonalOffsets = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
)
