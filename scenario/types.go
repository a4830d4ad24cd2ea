package scenario

import (
	"errors"

	"github.com/hashicorp/hcl/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors for scenario loading.
var (
	// ErrParse wraps HCL syntax and decoding diagnostics.
	ErrParse = errors.New("scenario: parse error")

	// ErrInvalid indicates a semantically impossible scenario.
	ErrInvalid = errors.New("scenario: invalid scenario")
)

// Scenario is a decoded, validated scenario file.
type Scenario struct {
	Filename string

	// Either Layout is set, or Rows/Columns/Start/Goal/Blocked are.
	Layout  []string
	Rows    int
	Columns int
	Start   grid.Location
	Goal    grid.Location
	Blocked []grid.Location

	// Fill is nil when no random obstacles are requested.
	Fill *Fill

	Heuristic heuristic.Kind
	Diagonal  bool
}

// Fill requests FillRandom with a fixed seed.
type Fill struct {
	Density float64
	Seed    int64
}

// fileRoot is the top-level structure of a scenario file for decoding.
type fileRoot struct {
	Grid   gridBlock    `hcl:"grid,block"`
	Search *searchBlock `hcl:"search,block"`
}

type gridBlock struct {
	Rows    *int           `hcl:"rows,optional"`
	Columns *int           `hcl:"columns,optional"`
	Start   hcl.Expression `hcl:"start,optional"`
	Goal    hcl.Expression `hcl:"goal,optional"`
	Blocked hcl.Expression `hcl:"blocked,optional"`
	Layout  hcl.Expression `hcl:"layout,optional"`
	Fill    *fillBlock     `hcl:"fill,block"`
}

type fillBlock struct {
	Density *float64 `hcl:"density,optional"`
	Seed    *int64   `hcl:"seed,optional"`
}

type searchBlock struct {
	Heuristic *string `hcl:"heuristic,optional"`
	Diagonal  *bool   `hcl:"diagonal,optional"`
}
