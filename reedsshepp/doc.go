// Package reedsshepp computes shortest bounded-curvature paths between
// oriented planar poses for a vehicle that can drive both forward and in
// reverse (the Reeds-Shepp car).
//
// What:
//
//   - ShortestPath(start, goal, radius) — the minimum-length kinematically
//     feasible path as an ordered sequence of typed motion segments
//     (Straight / Left / Right arcs, each Forward or Backward).
//   - Path.EndPose / Path.Sample — ideal-motion composition along a path,
//     used for continuity checks and rendering.
//
// How:
//
//	The problem is normalized to unit turning radius (positions divided by
//	radius) and the goal is expressed in the start frame. A fixed catalog
//	of 12 base path words — the canonical Reeds-Shepp families CSC, C|C|C,
//	C|CC, CC|C, CCu|CuC, C|CuCu|C, C|C[π/2]SC, CSC[π/2]|C and
//	C|C[π/2]SC[π/2]|C — is expanded by time-flip (gear reversal) and
//	reflection (left/right mirror) into 48 closed-form variants. Each
//	variant either yields segment magnitudes or is infeasible for the
//	relative goal (an inverse-trigonometric argument out of domain, or a
//	radicand below zero). The feasible word of minimum total length wins;
//	exact ties keep the first word in catalog enumeration order, so
//	results are reproducible. Winning segment lengths are rescaled by the
//	turning radius.
//
// Determinism:
//
//   - No randomness, no global state; strict-< reduction over a fixed
//     enumeration order.
//
// Errors:
//
//   - ErrInvalidRadius: radius ≤ 0, NaN or ±Inf.
//   - ErrNoFeasiblePath: every catalog word infeasible. With a complete
//     catalog this cannot happen for any relative pose; it is surfaced as
//     a loud invariant violation rather than papered over with a
//     straight-line fallback.
//
// A start pose equal to the goal pose is not an error: it produces a
// zero-length Path with no segments.
//
// Complexity: O(1) — 48 constant-time formula evaluations per call; the
// only allocation is the returned segment slice.
package reedsshepp
