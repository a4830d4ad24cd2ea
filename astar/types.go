// Package astar defines core types and configuration options
// for A* search over grid successor functions.
//
// Options:
//
//	– Diagonal:      allow the four diagonal moves in addition to the cardinal ones.
//	– OnExplored:    hooks notified once per non-stale frontier pop.
//	– Logger:        *slog.Logger receiving Debug records on state transitions.
//	– MaxExpansions: optional cap on expansions; 0 means unlimited.
//
// Errors (sentinel):
//
//	– ErrNoPath          the frontier emptied before the goal was popped.
//	– ErrStartNotSet     the grid has no start marker.
//	– ErrGoalNotSet      the grid has no goal marker.
//	– ErrNilGrid         a nil *grid.Grid was passed to Solve.
//	– ErrNilFunc         a nil goal test, successor function or heuristic.
//	– ErrNilNode         ReconstructPath was handed a nil node.
//	– ErrEmptyFrontier   Pop on an empty frontier.
//	– ErrExpansionLimit  MaxExpansions was reached before a terminal state.
//	– ErrOptionViolation an invalid Option value.
//	– ErrInvalidPath     ValidatePath rejected a path.
package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNoPath indicates the frontier was exhausted without reaching the goal.
	// It is a normal negative outcome, not a failure of the engine.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrStartNotSet indicates the grid has no start marker.
	ErrStartNotSet = errors.New("astar: start location not set")

	// ErrGoalNotSet indicates the grid has no goal marker.
	ErrGoalNotSet = errors.New("astar: goal location not set")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilFunc indicates a nil goal test, successor function or heuristic.
	ErrNilFunc = errors.New("astar: nil function argument")

	// ErrNilNode indicates path reconstruction from a nil node.
	ErrNilNode = errors.New("astar: cannot reconstruct path from nil node")

	// ErrEmptyFrontier indicates Pop on an empty frontier.
	ErrEmptyFrontier = errors.New("astar: frontier is empty")

	// ErrExpansionLimit indicates MaxExpansions was reached.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrInvalidPath indicates a path failed validation.
	ErrInvalidPath = errors.New("astar: invalid path")
)

// State is the lifecycle position of an Engine.
type State int

const (
	// Ready means initialized with the start node queued, not yet stepped.
	Ready State = iota
	// Running means at least one step ran and no terminal state was reached.
	Running
	// Succeeded means a popped node satisfied the goal test.
	Succeeded
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further step can change the state.
func (s State) Terminal() bool { return s == Succeeded || s == Exhausted }

// Stats counts the work done by one engine.
type Stats struct {
	Expansions   int           // pops that generated successors
	Stale        int           // pops discarded because a cheaper entry superseded them
	Pushes       int           // frontier pushes, including the start node
	PeakFrontier int           // largest frontier size observed
	Elapsed      time.Duration // wall time spent inside Step
}

// Options configures the engine.
type Options struct {
	// Diagonal enables 8-directional movement.
	Diagonal bool

	// OnExplored hooks run in registration order once per non-stale pop,
	// before the goal test.
	OnExplored []func(loc grid.Location)

	// Logger receives Debug records on state transitions.
	Logger *slog.Logger

	// MaxExpansions, if > 0, bounds the number of expansions.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the engine.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the engine is constructed.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - 4-directional movement
//   - no OnExplored hooks
//   - a logger that discards every record
//   - no expansion limit
func DefaultOptions() Options {
	return Options{
		Diagonal:      false,
		OnExplored:    nil,
		Logger:        slog.New(slog.DiscardHandler),
		MaxExpansions: 0,
	}
}

// WithDiagonal enables or disables diagonal movement.
func WithDiagonal(on bool) Option {
	return func(o *Options) {
		o.Diagonal = on
	}
}

// WithOnExplored appends a hook notified with each explored location.
// Hooks accumulate; a nil fn is ignored.
func WithOnExplored(fn func(loc grid.Location)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplored = append(o.OnExplored, fn)
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
