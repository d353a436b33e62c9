package trajectory

import (
	"errors"

	"github.com/katalvlaran/lvlpath/geom"
	"github.com/katalvlaran/lvlpath/reedsshepp"
	"github.com/katalvlaran/lvlpath/tour"
)

var (
	// ErrNoWaypoints indicates an empty ordered pose sequence.
	ErrNoWaypoints = errors.New("trajectory: waypoint sequence is empty")

	// ErrNoRadii indicates PlanTour was invoked without turning radii.
	ErrNoRadii = errors.New("trajectory: at least one turning radius is required")
)

// Trajectory is the concatenation of the per-leg shortest paths between
// consecutive ordered poses, for a single turning radius.
//
// Invariants: len(Paths) == len(Poses)−1; Paths[i] starts at Poses[i]
// and reaches Poses[i+1] within numerical tolerance; Length is the sum
// of leg lengths.
type Trajectory struct {
	Radius float64
	Poses  []geom.Pose
	Paths  []reedsshepp.Path
	Length float64
}

// Sample flattens the trajectory into poses spaced at most step apart
// along the driven arc length, for rendering. Legs are sampled in order;
// the first returned pose is Poses[0].
func (t Trajectory) Sample(step float64) []geom.Pose {
	if len(t.Poses) == 0 {
		return nil
	}

	out := []geom.Pose{t.Poses[0]}
	for i, p := range t.Paths {
		pts := p.Sample(t.Poses[i], step)
		// the leg's first sample duplicates the previous leg's last pose
		out = append(out, pts[1:]...)
	}

	return out
}

// Plan is the result of the full pipeline: the chosen visiting order and
// one Trajectory per requested radius, all built on that same order.
type Plan struct {
	Tour         tour.Tour
	Waypoints    []tour.Waypoint
	Trajectories []Trajectory
}

// Options configures PlanTour.
//
// Radii — the turning radii to assemble trajectories for, in caller
// order. NominalRadius — the radius the ordering is computed at; the
// order is radius-invariant, so any positive value yields the same tour.
// Tour — optimizer configuration (threshold, fixed start).
type Options struct {
	Radii         []float64
	NominalRadius float64
	Tour          tour.Options
}

// DefaultOptions mirrors the classic demo configuration: four radii to
// visualize, ordering computed at unit radius, optimizer defaults.
func DefaultOptions() Options {
	return Options{
		Radii:         []float64{0.5, 1.0, 2.0, 3.0},
		NominalRadius: 1.0,
		Tour:          tour.DefaultOptions(),
	}
}
