package trajectory

import (
	"github.com/katalvlaran/lvlpath/geom"
	"github.com/katalvlaran/lvlpath/reedsshepp"
	"github.com/katalvlaran/lvlpath/tour"
)

// Metric returns the distance oracle used to rank waypoint orderings:
// the length of the shortest Reeds-Shepp path at the given radius.
//
// The oracle is pure and deterministic; engine errors (ErrInvalidRadius,
// ErrNoFeasiblePath) propagate to the optimizer unchanged — a failed
// pair is never substituted with a straight-line estimate, which would
// silently corrupt the ordering's optimality.
func Metric(radius float64) tour.DistanceFunc {
	return func(a, b geom.Pose) (float64, error) {
		p, err := reedsshepp.ShortestPath(a, b, radius)
		if err != nil {
			return 0, err
		}

		return p.Length, nil
	}
}
