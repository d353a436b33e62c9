// Package trajectory glues the Reeds-Shepp engine and the waypoint-order
// optimizer into the full planning pipeline.
//
// What:
//
//   - Metric(radius) — the distance oracle handed to the tour optimizer:
//     cost(a, b) = length of the shortest Reeds-Shepp path at radius.
//   - Assemble — for an already-ordered pose sequence and one turning
//     radius, plans every consecutive leg and concatenates them into a
//     Trajectory with its aggregate length.
//   - PlanTour — the whole data flow: order the waypoints once at a
//     nominal radius, then assemble one Trajectory per requested radius
//     against that same order.
//
// Why one ordering for all radii:
//
//	Reeds-Shepp length scales linearly with the turning radius for a
//	fixed pair of poses in the same relative configuration, so the
//	ranking of orderings is invariant under a uniform positive radius
//	change. Ordering once at NominalRadius (default 1) and reusing the
//	order avoids re-running the factorial search per radius; only the
//	per-leg lengths are recomputed.
//
// Errors:
//
//   - ErrNoWaypoints — empty pose sequence,
//   - ErrNoRadii — PlanTour called with no turning radii,
//   - reedsshepp.ErrInvalidRadius and tour sentinels propagate unchanged.
//
// Everything here is a pure function of its inputs: no state, no I/O.
package trajectory
