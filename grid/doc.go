// Package grid models a rectangular occupancy grid for informed search.
//
// What:
//
//   - Location is an immutable (Row, Column) value used as a map key.
//   - Grid owns one CellState per cell: empty, blocked, start, goal, and
//     the presentational explored/path markers.
//   - Successors implements the successor contract consumed by the search
//     packages: in-bounds, non-blocked neighbours in a fixed order.
//   - FillRandom blocks empty cells with a given density (default 0.2).
//   - String / ParseLayout render and read an ASCII picture of the grid.
//
// Successor order (fixed, relied upon for reproducible traces):
//
//	cardinal:  left (c-1), down (r+1), right (c+1), up (r-1)
//	diagonal:  down-left, down-right, up-left, up-right
//
// Diagonal moves are allowed even when both flanking orthogonal cells are
// blocked (no corner-cutting rule).
//
// Invariants:
//
//   - At most one cell holds Start and at most one holds Goal.
//   - Start and goal may coincide; the shared cell shows the marker placed
//     last, and moving either one away uncovers the other.
//   - Blocked cells are never returned as successors.
//   - Explored/Path markers never overwrite Start, Goal or Blocked cells.
//
// Concurrency:
//
//   - Grid has no internal locking. The embedding application serializes
//     access between the search engine and any editing or rendering code.
//
// Errors:
//
//   - ErrEmptyGrid: rows or columns below one.
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrOutOfBounds: a location outside the grid.
//   - ErrBadDensity: random fill density outside [0, 1].
//   - ErrBadGlyph, ErrDuplicateMarker: malformed ASCII layouts.
package grid
