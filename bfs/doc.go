// Package bfs provides breadth-first search over grid successor functions,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore locations in non-decreasing move count from a start location.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from location → distance (moves) from start
//   - Parent: map from location → its predecessor in the BFS tree
//   - Goal/Found: the first visited location passing the goal test
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a location is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Every move costs 1, so BFS depth is the true shortest path cost.
//   - ShortestCost is the oracle the A* tests and the gridsearch -verify
//     flag compare against.
//
// Determinism
//
//	Successors arrive in the fixed grid order (cardinal, then diagonal), and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = reachable cells)
//
//   - Time:   O(V)   (each cell enqueued once, at most 8 successors each)
//   - Memory: O(V)   (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	cost, err := bfs.ShortestCost(start, g.IsGoal, g.Successors, true)
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // unreachable
//	}
//
//	res, err := bfs.Search(
//	    start, nil, g.Successors,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(loc grid.Location, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilFunc          if the successor function (or ShortestCost's goal test) is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo and ShortestCost when the target was not reached.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
