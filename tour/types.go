package tour

import (
	"errors"

	"github.com/katalvlaran/lvlpath/geom"
)

var (
	// ErrNoWaypoints indicates an empty waypoint set or an empty distance
	// matrix; there is nothing to order.
	ErrNoWaypoints = errors.New("tour: waypoint set is empty")

	// ErrNonSquare indicates a distance matrix whose rows do not all have
	// the matrix order as their length.
	ErrNonSquare = errors.New("tour: distance matrix must be square")

	// ErrBadDistance indicates a NaN, infinite or negative entry, or a
	// non-zero diagonal, in the distance matrix.
	ErrBadDistance = errors.New("tour: distances must be finite, non-negative, with zero diagonal")

	// ErrStartOutOfRange indicates Options.Start outside [0, n).
	ErrStartOutOfRange = errors.New("tour: start index out of range")

	// ErrBadThreshold indicates a negative exact-search threshold.
	ErrBadThreshold = errors.New("tour: threshold must be non-negative")

	// ErrNilDistanceFunc indicates a nil distance oracle.
	ErrNilDistanceFunc = errors.New("tour: distance function is nil")
)

// DistanceFunc is the cost oracle between two oriented poses. It must be
// deterministic; the optimizer caches results in a matrix and never
// re-queries a pair.
type DistanceFunc func(a, b geom.Pose) (float64, error)

// Waypoint tags a pose with its stable position in the original input
// list, so identity survives reordering.
type Waypoint struct {
	Index int
	Pose  geom.Pose
}

// Tour is an ordering of waypoint indices plus its total open-path cost.
//
// Order is a permutation of 0…n−1; Cost is the sum of the n−1 pairwise
// costs between consecutive entries (no closing edge).
type Tour struct {
	Order []int
	Cost  float64
}

// Waypoints maps the tour order back onto the original pose list,
// returning waypoints in visit order with their input indices preserved.
// len(poses) must cover every index in Order.
func (t Tour) Waypoints(poses []geom.Pose) []Waypoint {
	out := make([]Waypoint, len(t.Order))
	for i, idx := range t.Order {
		out[i] = Waypoint{Index: idx, Pose: poses[idx]}
	}

	return out
}

// Method identifies the ordering algorithm chosen by the dispatcher.
type Method int

const (
	// ExactPermutation enumerates every ordering with a fixed start;
	// optimal, factorial cost.
	ExactPermutation Method = iota

	// GreedyNearestNeighbor extends the tour with the closest unvisited
	// waypoint; fast, not optimal.
	GreedyNearestNeighbor
)

// String names the method for logs and test output.
func (m Method) String() string {
	if m == GreedyNearestNeighbor {
		return "greedy-nearest-neighbor"
	}

	return "exact-permutation"
}

// DefaultThreshold is the waypoint count below which exact search is
// affordable: (10−1)! orderings is the accepted upper bound.
const DefaultThreshold = 10

// Options configures the optimizer.
//
// Threshold — instance sizes n < Threshold run ExactPermutation, larger
// ones GreedyNearestNeighbor. Zero means "always greedy".
// Start — index of the waypoint fixed as the tour start (default 0, the
// first waypoint of the input).
type Options struct {
	Threshold int
	Start     int
}

// DefaultOptions returns the recommended configuration: exact search
// below DefaultThreshold, starting from the first input waypoint.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Start: 0}
}

// Strategy is the pure exact-vs-greedy selection rule, exposed separately
// so the branch is unit-testable without running either search.
func Strategy(n, threshold int) Method {
	if n < threshold {
		return ExactPermutation
	}

	return GreedyNearestNeighbor
}
