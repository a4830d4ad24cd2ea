// Package bfs provides tunable options and error definitions
// for breadth-first search over grid successor functions.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilFunc is returned when the successor function is nil.
	ErrNilFunc = errors.New("bfs: successor function is nil")

	// ErrNoPath is returned when the destination was never reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Diagonal selects 8-directional movement.
	Diagonal bool

	// OnEnqueue is called when a location is enqueued, before visiting.
	// Receives the location and its depth from the start.
	OnEnqueue func(loc grid.Location, depth int)

	// OnVisit is called when visiting a location. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(loc grid.Location, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - 4-directional movement
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Diagonal:  false,
		OnEnqueue: func(grid.Location, int) {},
		OnVisit:   func(grid.Location, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiagonal enables or disables diagonal movement.
func WithDiagonal(on bool) Option {
	return func(o *Options) {
		o.Diagonal = on
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(loc grid.Location, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(loc grid.Location, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: locations visited, in visit sequence.
//   - Depth: map from location to its distance (in moves) from the start.
//   - Parent: map from location to its predecessor in the BFS tree.
//   - Goal/Found: the first visited location passing the goal test, if any.
type Result struct {
	Order  []grid.Location
	Depth  map[grid.Location]int
	Parent map[grid.Location]grid.Location
	Goal   grid.Location
	Found  bool
}

// PathTo reconstructs the path from the start location to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Location) ([]grid.Location, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	// build reversed path
	path := []grid.Location{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
