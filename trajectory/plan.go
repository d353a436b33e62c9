package trajectory

import (
	"github.com/katalvlaran/lvlpath/geom"
	"github.com/katalvlaran/lvlpath/tour"
)

// PlanTour runs the complete pipeline over the raw waypoint poses:
//
//  1. order the waypoints once, ranking candidate orderings by
//     Reeds-Shepp length at opts.NominalRadius (exact search below the
//     optimizer threshold, greedy above it),
//  2. assemble one Trajectory per entry of opts.Radii against that same
//     visiting order.
//
// The per-radius trajectories therefore differ in geometry and length
// but never in waypoint order.
//
// Complexity: n·(n−1) engine calls for the distance matrix, the
// dispatched search, then (n−1)·len(Radii) engine calls for assembly.
func PlanTour(poses []geom.Pose, opts Options) (Plan, error) {
	if len(poses) == 0 {
		return Plan{}, ErrNoWaypoints
	}
	if len(opts.Radii) == 0 {
		return Plan{}, ErrNoRadii
	}

	t, err := tour.SolveWithPoses(poses, Metric(opts.NominalRadius), opts.Tour)
	if err != nil {
		return Plan{}, err
	}

	ordered := make([]geom.Pose, len(t.Order))
	for i, idx := range t.Order {
		ordered[i] = poses[idx]
	}

	var (
		trajs = make([]Trajectory, 0, len(opts.Radii))
		tr    Trajectory
	)
	for _, r := range opts.Radii {
		if tr, err = Assemble(ordered, r); err != nil {
			return Plan{}, err
		}
		trajs = append(trajs, tr)
	}

	return Plan{
		Tour:         t,
		Waypoints:    t.Waypoints(poses),
		Trajectories: trajs,
	}, nil
}
