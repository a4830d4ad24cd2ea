package astar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Engine runs one A* search from a fixed start. It owns the frontier, the
// best-cost table and the node forest for that search only.
//
// Engines are not safe for concurrent use; in stepped mode the caller must
// let one Step return before issuing the next. Independent engines share
// nothing and may run in parallel.
type Engine struct {
	start      grid.Location
	isGoal     grid.GoalFunc
	successors grid.SuccessorFunc
	h          heuristic.Func
	opts       Options
	log        *slog.Logger

	state    State
	frontier *Frontier
	best     map[grid.Location]int // lowest cost at which each location was pushed
	result   *Node
	stats    Stats
}

// NewEngine validates its inputs and returns an engine in state Ready with
// the start node already on the frontier.
//
// Returns ErrNilFunc if isGoal, successors or h is nil, and
// ErrOptionViolation for an invalid Option.
func NewEngine(
	start grid.Location,
	isGoal grid.GoalFunc,
	successors grid.SuccessorFunc,
	h heuristic.Func,
	opts ...Option,
) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if isGoal == nil || successors == nil || h == nil {
		return nil, ErrNilFunc
	}

	e := &Engine{
		start:      start,
		isGoal:     isGoal,
		successors: successors,
		h:          h,
		opts:       o,
		log:        o.Logger.With(slog.String("start", start.String())),
		state:      Ready,
		frontier:   NewFrontier(),
		best:       make(map[grid.Location]int),
	}
	e.push(NewNode(start, nil, 0, h(start)))

	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Stats returns a snapshot of the work counters.
func (e *Engine) Stats() Stats { return e.stats }

// Result returns the goal node once the engine has Succeeded.
func (e *Engine) Result() (*Node, bool) { return e.result, e.state == Succeeded }

// FrontierLen returns the number of queued entries, stale ones included.
func (e *Engine) FrontierLen() int { return e.frontier.Len() }

// Step performs one frontier pop and returns the resulting state.
//
//  1. An empty frontier moves the engine to Exhausted.
//  2. A popped entry costlier than the best-cost table is discarded as stale.
//  3. OnExplored hooks run for the popped location.
//  4. A location passing the goal test moves the engine to Succeeded.
//  5. Otherwise every successor reachable more cheaply than recorded is pushed
//     with cost + 1 and the engine stays Running.
//
// Step on a terminal engine is a no-op. Once MaxExpansions is reached, a step
// whose next live entry would need expanding returns ErrExpansionLimit and
// leaves the frontier and the state untouched; stale and goal pops still
// proceed.
func (e *Engine) Step() (State, error) {
	if e.state.Terminal() {
		return e.state, nil
	}
	began := time.Now()
	defer func() { e.stats.Elapsed += time.Since(began) }()

	if e.state == Ready {
		e.transition(Running)
	}

	node, ok := e.frontier.Peek()
	if !ok {
		e.transition(Exhausted)
		return e.state, nil
	}
	loc := node.Location()
	if node.Cost() > e.best[loc] {
		_, _ = e.frontier.Pop()
		e.stats.Stale++
		return e.state, nil
	}
	goal := e.isGoal(loc)
	if !goal && e.limitReached() {
		return e.state, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, e.stats.Expansions)
	}
	_, _ = e.frontier.Pop()

	for _, fn := range e.opts.OnExplored {
		fn(loc)
	}

	if goal {
		e.result = node
		e.transition(Succeeded)
		return e.state, nil
	}

	e.expand(node)

	return e.state, nil
}

// limitReached reports whether another expansion would exceed MaxExpansions.
func (e *Engine) limitReached() bool {
	return e.opts.MaxExpansions > 0 && e.stats.Expansions >= e.opts.MaxExpansions
}

// Run steps until a terminal state. ctx is checked between steps; there is
// no internal deadline.
//
// Returns the goal node, ErrNoPath on exhaustion, ErrExpansionLimit, or the
// context error.
func (e *Engine) Run(ctx context.Context) (*Node, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for !e.state.Terminal() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}
	if e.state == Exhausted {
		return nil, ErrNoPath
	}

	return e.result, nil
}

// expand pushes every successor of node whose new cost beats the table.
func (e *Engine) expand(node *Node) {
	e.stats.Expansions++
	newCost := node.Cost() + 1
	for _, child := range e.successors(node.Location(), e.opts.Diagonal) {
		if known, ok := e.best[child]; ok && known <= newCost {
			continue
		}
		e.push(NewNode(child, node, newCost, e.h(child)))
	}
}

// push records n in the best-cost table and queues it.
func (e *Engine) push(n *Node) {
	e.best[n.Location()] = n.Cost()
	e.frontier.Push(n)
	e.stats.Pushes++
	if l := e.frontier.Len(); l > e.stats.PeakFrontier {
		e.stats.PeakFrontier = l
	}
}

// transition moves to next and emits a Debug record.
func (e *Engine) transition(next State) {
	prev := e.state
	e.state = next

	attrs := []slog.Attr{
		slog.String("from", prev.String()),
		slog.String("to", next.String()),
		slog.Int("expansions", e.stats.Expansions),
		slog.Int("pushes", e.stats.Pushes),
	}
	if next == Succeeded {
		attrs = append(attrs,
			slog.Int("cost", e.result.Cost()),
			slog.String("goal", e.result.Location().String()))
	}
	e.log.LogAttrs(context.Background(), slog.LevelDebug, "astar: state transition", attrs...)
}
