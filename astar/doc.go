// Package astar provides A* search over grid successor functions with a
// lazy-deletion frontier, a best-cost table and an immutable node forest.
//
// Overview:
//
//   - The engine pops the node with the smallest cost + heuristic, goal-tests
//     it, and otherwise pushes every successor reachable more cheaply than the
//     best cost recorded so far. Every move costs 1, diagonal moves included.
//   - Superseded frontier entries are not removed eagerly; a popped entry whose
//     cost exceeds the best-cost table is discarded as stale.
//   - Ties on cost + heuristic pop in insertion order, so traces are
//     reproducible for a given grid and heuristic.
//   - The heuristic is an opaque heuristic.Func; the engine never learns which
//     variant it runs with.
//
// State machine:
//
//	Ready ──Step──▶ Running ──Step──▶ Succeeded
//	                   │
//	                   └──────Step──▶ Exhausted
//
// Engine.Step advances one pop for animated or stepped drivers; Engine.Run
// and Search drive it to completion. Cancellation is cooperative only: Run
// checks its context between steps, and stepped drivers simply stop calling.
//
// Key features:
//
//   - WithOnExplored: presentation hooks notified once per non-stale pop.
//   - WithLogger: Debug records on state transitions via log/slog.
//   - WithMaxExpansions: optional work bound for interactive callers.
//   - Solve: glue for *grid.Grid that validates start/goal, marks explored
//     cells and the resulting path, and reports Stats.
//   - ReconstructPath / ValidatePath: node chain → start-to-goal slice, and a
//     checker for the single-move, no-repeat path property.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = number of pushes (bounded by cells × moves per cell)
//   - Space: O(N) for the frontier, the best-cost table and the node forest
//
// Error handling (sentinel errors):
//
//   - ErrNoPath: the frontier emptied; a normal negative result.
//   - ErrStartNotSet, ErrGoalNotSet, ErrNilGrid, ErrNilFunc: invalid
//     configuration detected before the first expansion.
//   - ErrNilNode: ReconstructPath(nil), a caller precondition violation.
//   - ErrEmptyFrontier: Frontier.Pop with nothing queued.
//   - ErrExpansionLimit, ErrOptionViolation, ErrInvalidPath.
//
// Thread safety:
//
//   - An Engine is single-threaded. Independent engines share nothing.
//   - Solve writes markers into the grid; serialize it with other grid users.
package astar
