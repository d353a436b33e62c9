package reedsshepp

import "errors"

var (
	// ErrInvalidRadius is returned when the turning radius is zero,
	// negative, NaN or infinite.
	ErrInvalidRadius = errors.New("reedsshepp: turning radius must be positive and finite")

	// ErrNoFeasiblePath is returned when no catalog word is feasible for
	// the relative goal. A complete catalog admits at least one word for
	// every pose pair, so this sentinel signals a formula-level defect and
	// must never be swallowed by callers.
	ErrNoFeasiblePath = errors.New("reedsshepp: no feasible word in catalog")
)

// Steering identifies the curvature of a motion segment.
type Steering int

const (
	// Straight drives along the current heading.
	Straight Steering = iota
	// Left follows a circular arc turning left at the minimum radius.
	Left
	// Right follows a circular arc turning right at the minimum radius.
	Right
)

// String returns a compact letter form (S, L, R) used in traces and tests.
func (s Steering) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "S"
	}
}

// mirror swaps Left and Right; Straight is self-mirrored.
func (s Steering) mirror() Steering {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Straight
	}
}

// Gear is the direction of travel along a segment.
type Gear int

const (
	// Forward gear.
	Forward Gear = iota
	// Backward gear (reverse).
	Backward
)

// String returns "+" for Forward and "-" for Backward.
func (g Gear) String() string {
	if g == Backward {
		return "-"
	}

	return "+"
}

// reverse flips the direction of travel.
func (g Gear) reverse() Gear {
	if g == Forward {
		return Backward
	}

	return Forward
}

// Segment is one typed motion primitive of a path.
//
// Length is always ≥ 0 and measured in world units: for arcs it equals
// radius × swept angle. A zero-length segment contributes nothing and is
// dropped by the engine before a Path is returned.
type Segment struct {
	Steering Steering
	Gear     Gear
	Length   float64
}

// Path is the minimum-length feasible path returned by ShortestPath.
//
// Invariants:
//   - Length == sum of segment lengths,
//   - composing ideal motion segment by segment from the start pose
//     reproduces the goal pose within numerical tolerance,
//   - Radius is the turning radius the path was computed for.
type Path struct {
	Segments []Segment
	Radius   float64
	Length   float64
}
