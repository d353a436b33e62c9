// Package lvlpath plans drivable routes through oriented waypoints —
// from a single shortest Reeds-Shepp curve to a fully ordered,
// multi-radius trajectory ready to draw.
//
// 🚗 What is lvlpath?
//
//	A small, deterministic planning library that brings together:
//		• Poses: oriented 2D points with normalized headings
//		• Shortest paths: the 48-variant Reeds-Shepp catalog, forward & reverse
//		• Tour ordering: exact permutation search on small sets, greedy beyond
//		• Trajectories: per-radius assembly of the ordered tour
//		• Boundaries: waypoint files in, rendered figures out
//
// ✨ Why choose lvlpath?
//
//   - Deterministic – ties always break the same way, runs always agree
//   - Honest errors – infeasible pairs surface, nothing is silently patched
//   - Radius-aware – order once, assemble for every turning radius
//   - Pure Go – closed-form geometry, no solver daemons
//
// Under the hood, everything is organized under six subpackages:
//
//	geom/         — Pose, angle normalization & frame changes
//	reedsshepp/   — optimal path engine between two poses
//	tour/         — waypoint-ordering optimizer (exact / greedy)
//	trajectory/   — distance oracle, per-radius assembler, full pipeline
//	waypointfile/ — tolerant x,y,heading-degrees reader
//	render/       — gonum/plot figures, one colored curve per radius
//
// Quick ASCII example:
//
//	    B←──╮
//	    ↑   │
//	    A──→╯
//
//	a car that cannot turn in place still reaches B's heading by
//	combining forward and reverse arcs.
//
// Dive into the package docs for the engine's catalog structure, the
// optimizer's tie-break rules, and the rendering palette.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
