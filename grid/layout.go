package grid

import (
	"fmt"
	"strings"
)

// String renders the grid as ASCII, one line per row, each line terminated
// by '\n'. Glyphs: '#' blocked, 'S' start, 'G' goal, '*' path,
// '.' explored, ' ' empty.
//
// Complexity: O(rows×columns).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.columns + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			b.WriteRune(g.cells[r*g.columns+c].Glyph())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ParseLayout builds a grid from ASCII lines using the glyphs of String.
// Path and explored glyphs are accepted and restored as markers.
//
// Errors:
//   - ErrEmptyGrid: no lines or an empty first line.
//   - ErrNonRectangular: lines of differing rune length.
//   - ErrBadGlyph: an unknown character.
//   - ErrDuplicateMarker: more than one 'S' or 'G'.
//
// Complexity: O(rows×columns).
func ParseLayout(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, i, len(rows[i]), len(rows[0]))
		}
	}

	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, ch := range row {
			loc := Location{Row: r, Column: c}
			switch ch {
			case GlyphEmpty:
			case GlyphBlocked:
				g.cells[g.index(loc)] = Blocked
			case GlyphExplored:
				g.cells[g.index(loc)] = Explored
			case GlyphPath:
				g.cells[g.index(loc)] = Path
			case GlyphStart:
				if g.hasStart {
					return nil, fmt.Errorf("%w: second start at %s", ErrDuplicateMarker, loc)
				}
				g.SetStart(loc)
			case GlyphGoal:
				if g.hasGoal {
					return nil, fmt.Errorf("%w: second goal at %s", ErrDuplicateMarker, loc)
				}
				g.SetGoal(loc)
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadGlyph, ch, loc)
			}
		}
	}

	return g, nil
}
