// Package tour orders a set of oriented waypoints so that the total
// travelled path length is minimized.
//
// What:
//
//   - DistanceMatrix — materializes the pairwise cost matrix by querying a
//     DistanceFunc oracle (typically Reeds-Shepp path length) once per
//     ordered pair.
//   - Exact — exhaustive permutation search with the first waypoint fixed
//     as the tour start; globally optimal, O((n−1)!) candidate orderings.
//   - Greedy — nearest-neighbor construction; O(n²), not optimal, used
//     above the exact-search threshold.
//   - SolveWithMatrix / SolveWithPoses — dispatchers that pick the method
//     via Strategy(n, threshold).
//
// Conventions:
//
//   - A Tour is an open path over all n waypoints: Order is a permutation
//     of 0…n−1, Cost sums the n−1 consecutive edges. No closing edge back
//     to the start is added; callers wanting a loop compose it themselves.
//   - The first waypoint (Options.Start, default 0) is fixed as the tour
//     start in both methods, so results are comparable across methods.
//   - Tie-breaks are deterministic: Exact enumerates permutations in
//     lexicographic order and keeps the first optimum (equivalently, the
//     candidate preferring the lowest original input index); Greedy scans
//     unvisited indices in ascending order with a strict < test.
//
// Determinism:
//
//   - No randomness, no time-based behavior; costs are rounded to 1e-9 to
//     keep results stable across platforms.
//
// Errors (sentinel, from types.go):
//
//   - ErrNoWaypoints, ErrNonSquare, ErrBadDistance, ErrStartOutOfRange,
//     ErrBadThreshold, ErrNilDistanceFunc.
//
// Known limitation: Greedy is a local, non-backtracking heuristic and can
// produce tours significantly longer than optimal on adversarial inputs.
// That is a documented property of the method, not a defect.
package tour
