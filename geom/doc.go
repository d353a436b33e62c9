// Package geom provides the planar pose primitives shared by all lvlpath
// planners: positions, headings, angle normalization and frame transforms.
//
// What:
//
//   - Pose — a 2D position (embedding geom.Coord from jbeda/geom) plus a
//     heading angle Theta in radians, kept normalized to (-π, π].
//   - NormalizeAngle / AngleDelta — canonical wrapping of angles and
//     angle differences.
//   - Deg2Rad / Rad2Deg — the only unit conversion performed at the
//     waypoint input boundary.
//   - Polar — Cartesian → polar decomposition used by the Reeds-Shepp
//     word formulas.
//   - Pose.RelativeTo — expresses a pose in the reference frame of
//     another pose (translate, then rotate), the first step of every
//     Reeds-Shepp evaluation.
//   - Pose.Scale — uniform scaling of the position (heading unchanged),
//     used to normalize problems to a unit turning radius.
//
// Why:
//
//   - Every non-trivial bug in bounded-curvature planning is an angle
//     convention bug. Centralizing normalization in one package keeps the
//     invariant "Theta ∈ (-π, π]" enforceable and testable.
//
// Complexity: all operations are O(1), allocation-free.
//
// The package performs no I/O and holds no state; all values are plain
// value types safe to copy and share.
package geom
