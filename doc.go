// Package gridpath is a small toolkit for shortest-path search on 2D
// occupancy grids, built around an A* engine that can run to completion or
// one expansion at a time.
//
// What is in the box?
//
//   - grid/     : rectangular cell grid with start/goal markers, obstacles,
//     explored and path overlays, 4- or 8-way successors, seeded random
//     fill, ASCII render and parse.
//   - heuristic/: Euclidean, Manhattan and Chebyshev estimates, plus a
//     Kind enum with parsing and an admissibility check.
//   - astar/    : lazy-deletion A* engine with a Ready/Running/Succeeded/
//     Exhausted state machine, exploration hooks, stats and Solve glue.
//   - bfs/      : breadth-first walker used as an unweighted reference for
//     optimal path lengths.
//   - scenario/ : HCL scenario files describing a grid and search settings.
//   - cmd/gridsearch: terminal driver that loads or generates a grid,
//     solves it and prints the annotated map.
//
// Quick ASCII example (S start, G goal, # obstacle, * path):
//
//	S**#
//	 #*#
//	  *G
//
// Every move costs 1, diagonal moves included, so a path's cost equals its
// number of moves.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridsearch@latest
package gridpath
