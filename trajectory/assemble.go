package trajectory

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlpath/geom"
	"github.com/katalvlaran/lvlpath/reedsshepp"
)

// Assemble plans the shortest Reeds-Shepp path for every consecutive
// pair of the already-ordered pose sequence at the given turning radius
// and concatenates the legs into one Trajectory.
//
// Contract:
//   - ordered must be non-empty (ErrNoWaypoints); a single pose yields a
//     legless zero-length Trajectory,
//   - radius must be positive and finite (reedsshepp.ErrInvalidRadius).
//
// The radius affects only segment scaling and lengths, never the order;
// callers wanting several radii invoke Assemble once per radius against
// the same sequence (see PlanTour).
//
// Complexity: n−1 engine calls, O(total segments) memory.
func Assemble(ordered []geom.Pose, radius float64) (Trajectory, error) {
	if len(ordered) == 0 {
		return Trajectory{}, ErrNoWaypoints
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Trajectory{}, reedsshepp.ErrInvalidRadius
	}

	var (
		n       = len(ordered)
		paths   = make([]reedsshepp.Path, 0, n-1)
		lengths = make([]float64, 0, n-1)
		p       reedsshepp.Path
		err     error
		i       int
	)
	for i = 1; i < n; i++ {
		if p, err = reedsshepp.ShortestPath(ordered[i-1], ordered[i], radius); err != nil {
			return Trajectory{}, err
		}
		paths = append(paths, p)
		lengths = append(lengths, p.Length)
	}

	return Trajectory{
		Radius: radius,
		Poses:  append([]geom.Pose(nil), ordered...),
		Paths:  paths,
		Length: floats.Sum(lengths),
	}, nil
}
