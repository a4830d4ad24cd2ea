// Package bfs provides breadth-first search over grid successor functions,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// It is the exhaustive reference against which informed searches are checked.
package bfs

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a location with its BFS depth.
type queueItem struct {
	loc   grid.Location
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	successors grid.SuccessorFunc
	isGoal     grid.GoalFunc
	opts       Options
	ctx        context.Context
	queue      []queueItem
	visited    mapset.Set[grid.Location]
	res        *Result
}

// Search runs breadth-first search from start over successors, applying any
// number of functional Options. When isGoal is non-nil the search stops at the
// first visited location that passes it; otherwise every reachable location
// is visited.
//
// Returns ErrNilFunc, ErrOptionViolation for bad options, the context error
// on cancellation, or any user-supplied hook error.
//
// Complexity: O(V) time and memory, V = reachable cells.
func Search(start grid.Location, isGoal grid.GoalFunc, successors grid.SuccessorFunc, opts ...Option) (*Result, error) {
	if successors == nil {
		return nil, ErrNilFunc
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		successors: successors,
		isGoal:     isGoal,
		opts:       o,
		ctx:        o.Ctx,
		visited:    mapset.New[grid.Location](),
		res: &Result{
			Depth:  make(map[grid.Location]int),
			Parent: make(map[grid.Location]grid.Location),
		},
	}

	// Seed queue with start location (no parent)
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// ShortestCost returns the minimum number of moves from start to a location
// passing isGoal under the given movement model, or ErrNoPath.
func ShortestCost(start grid.Location, isGoal grid.GoalFunc, successors grid.SuccessorFunc, diagonal bool, opts ...Option) (int, error) {
	if isGoal == nil {
		return 0, ErrNilFunc
	}
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithDiagonal(diagonal))

	res, err := Search(start, isGoal, successors, all...)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, ErrNoPath
	}

	return res.Depth[res.Goal], nil
}

// enqueue marks loc visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(loc grid.Location, d int, parent grid.Location, hasParent bool) {
	w.visited.Put(loc)
	w.res.Depth[loc] = d
	if hasParent {
		w.res.Parent[loc] = parent
	}
	w.opts.OnEnqueue(loc, d)
	w.queue = append(w.queue, queueItem{loc: loc, depth: d})
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.isGoal != nil && w.isGoal(item.loc) {
			w.res.Goal, w.res.Found = item.loc, true
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the location in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.loc)
	if err := w.opts.OnVisit(item.loc, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.loc, err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen successor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.successors(item.loc, w.opts.Diagonal) {
		if !w.visited.Has(nbr) {
			w.enqueue(nbr, nextDepth, item.loc, true)
		}
	}
}
