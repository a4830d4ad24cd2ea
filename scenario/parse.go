package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Load parses and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrParse, path, diags)
	}

	return decode(file, path)
}

// Parse parses and validates scenario source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrParse, filename, diags)
	}

	return decode(file, filename)
}

// decode turns a parsed file into a validated Scenario.
func decode(file *hcl.File, filename string) (*Scenario, error) {
	ctx := evalContext()

	var root fileRoot
	diags := gohcl.DecodeBody(file.Body, ctx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrParse, filename, diags)
	}

	s := &Scenario{Filename: filename, Heuristic: heuristic.Euclidean}

	gb := root.Grid
	start, d := decodeLocation(gb.Start, ctx)
	diags = append(diags, d...)
	goal, d := decodeLocation(gb.Goal, ctx)
	diags = append(diags, d...)
	s.Blocked, d = decodeLocations(gb.Blocked, ctx)
	diags = append(diags, d...)
	s.Layout, d = decodeLines(gb.Layout, ctx)
	diags = append(diags, d...)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrParse, filename, diags)
	}

	if err := s.shape(gb, start, goal); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, filename, err)
	}
	if err := s.settings(gb.Fill, root.Search); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, filename, err)
	}

	return s, nil
}

// shape fills in the grid geometry from either the layout or the explicit
// attributes and checks every location against the bounds.
func (s *Scenario) shape(gb gridBlock, start, goal *grid.Location) error {
	if s.Layout != nil {
		if gb.Rows != nil || gb.Columns != nil || start != nil || goal != nil || s.Blocked != nil {
			return fmt.Errorf("layout cannot be combined with rows, columns, start, goal or blocked")
		}
		g, err := grid.ParseLayout(s.Layout)
		if err != nil {
			return err
		}
		s.Rows, s.Columns = g.Rows(), g.Columns()
		var ok bool
		if s.Start, ok = g.Start(); !ok {
			return fmt.Errorf("layout has no start 'S'")
		}
		if s.Goal, ok = g.Goal(); !ok {
			return fmt.Errorf("layout has no goal 'G'")
		}

		return nil
	}

	switch {
	case gb.Rows == nil || gb.Columns == nil:
		return fmt.Errorf("rows and columns are required without a layout")
	case *gb.Rows < 1 || *gb.Columns < 1:
		return fmt.Errorf("%w: %d×%d", grid.ErrEmptyGrid, *gb.Rows, *gb.Columns)
	case start == nil:
		return fmt.Errorf("start is required without a layout")
	case goal == nil:
		return fmt.Errorf("goal is required without a layout")
	}
	s.Rows, s.Columns = *gb.Rows, *gb.Columns
	s.Start, s.Goal = *start, *goal

	inBounds := func(l grid.Location) bool {
		return l.Row >= 0 && l.Row < s.Rows && l.Column >= 0 && l.Column < s.Columns
	}
	if !inBounds(s.Start) {
		return fmt.Errorf("%w: start %s", grid.ErrOutOfBounds, s.Start)
	}
	if !inBounds(s.Goal) {
		return fmt.Errorf("%w: goal %s", grid.ErrOutOfBounds, s.Goal)
	}
	for _, b := range s.Blocked {
		if !inBounds(b) {
			return fmt.Errorf("%w: blocked %s", grid.ErrOutOfBounds, b)
		}
	}

	return nil
}

// settings applies the fill and search blocks over the defaults.
func (s *Scenario) settings(fb *fillBlock, sb *searchBlock) error {
	if fb != nil {
		f := &Fill{Density: grid.DefaultDensity}
		if fb.Density != nil {
			f.Density = *fb.Density
		}
		if fb.Seed != nil {
			f.Seed = *fb.Seed
		}
		if f.Density < 0 || f.Density > 1 {
			return fmt.Errorf("%w: %g", grid.ErrBadDensity, f.Density)
		}
		s.Fill = f
	}

	if sb == nil {
		return nil
	}
	if sb.Heuristic != nil {
		k, err := heuristic.ParseKind(*sb.Heuristic)
		if err != nil {
			return err
		}
		s.Heuristic = k
	}
	if sb.Diagonal != nil {
		s.Diagonal = *sb.Diagonal
	}

	return nil
}

// Build materializes the scenario as a fresh grid: layout or markers first,
// then listed obstacles, then the seeded random fill.
func (s *Scenario) Build() (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	if s.Layout != nil {
		g, err = grid.ParseLayout(s.Layout)
	} else {
		g, err = grid.New(s.Rows, s.Columns)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if s.Layout == nil {
		g.SetStart(s.Start)
		g.SetGoal(s.Goal)
	}
	for _, b := range s.Blocked {
		g.Block(b)
	}
	if s.Fill != nil {
		if err = g.FillRandom(s.Fill.Density, grid.NewRand(s.Fill.Seed)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	return g, nil
}
