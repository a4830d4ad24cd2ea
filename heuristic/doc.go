// Package heuristic provides distance estimates toward a fixed goal cell for
// informed grid search.
//
// What
//
//   - Func is a pure estimate(location) → float64 bound to one goal.
//   - Three interchangeable variants, selectable at runtime through Kind:
//   - Euclidean: sqrt(dr² + dc²); admissible only for 4-way movement, since
//     a unit-cost diagonal step is estimated at √2.
//   - Manhattan: |dr| + |dc|; admissible only for 4-way movement.
//   - Chebyshev: max(|dr|, |dc|); admissible and tight for 8-way uniform cost.
//
// The search engine never learns which variant it was handed; Kind exists for
// configuration surfaces (flags, scenario files) and for Admissible.
//
// Complexity
//
//   - Every Func is O(1) time and allocation-free.
//
// Errors
//
//   - ErrUnknownKind: ParseKind or New given an unrecognized variant.
package heuristic
