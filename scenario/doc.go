// Package scenario loads grid search scenarios from HCL files.
//
// A scenario describes a grid (either by dimensions, markers and obstacle
// list, or by an ASCII layout), an optional seeded random fill, and the search
// settings:
//
//	grid {
//	  rows    = 10
//	  columns = 10
//	  start   = [0, 0]
//	  goal    = [9, 9]
//	  blocked = [[1, 1], [2, 2]]
//
//	  fill {
//	    density = density_default
//	    seed    = 42
//	  }
//	}
//
//	search {
//	  heuristic = "chebyshev"
//	  diagonal  = true
//	}
//
// The layout attribute (a list of strings using the grid glyphs) replaces
// rows, columns, start, goal and blocked. Expressions are evaluated with the
// variable density_default and the functions min and max.
//
// Errors
//
//   - ErrParse:   HCL syntax or decoding diagnostics.
//   - ErrInvalid: a well-formed file describing an impossible scenario.
package scenario
