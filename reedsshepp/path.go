package reedsshepp

import (
	"math"

	"github.com/katalvlaran/lvlpath/geom"
)

// EndPose returns the pose reached by driving the whole segment from
// start with the given turning radius.
func (s Segment) EndPose(start geom.Pose, radius float64) geom.Pose {
	return advance(start, s, radius, s.Length)
}

// EndPose composes ideal motion over all segments starting at start.
// For a path returned by ShortestPath(start, goal, r) the result equals
// goal within numerical tolerance; the property tests rely on this.
func (p Path) EndPose(start geom.Pose) geom.Pose {
	pose := start
	for _, s := range p.Segments {
		pose = s.EndPose(pose, p.Radius)
	}

	return pose
}

// Sample returns poses along the path starting at start, spaced at most
// step world units apart along the arc length, always including the
// start pose and every segment endpoint. step must be positive; the
// result is suitable for polyline rendering.
func (p Path) Sample(start geom.Pose, step float64) []geom.Pose {
	if step <= 0 {
		return []geom.Pose{start}
	}

	out := make([]geom.Pose, 0, int(p.Length/step)+len(p.Segments)+1)
	out = append(out, start)

	pose := start
	var (
		n    int
		i    int
		frac float64
	)
	for _, s := range p.Segments {
		n = int(math.Ceil(s.Length / step))
		if n < 1 {
			n = 1
		}
		for i = 1; i <= n; i++ {
			frac = s.Length * float64(i) / float64(n)
			out = append(out, advance(pose, s, p.Radius, frac))
		}
		pose = s.EndPose(pose, p.Radius)
	}

	return out
}

// advance drives a prefix of length l along segment s from pose p.
//
// Arc geometry: a Left arc orbits the center 90° left of the heading,
// a Right arc the center 90° right; reversing gear traverses the same
// circle in the opposite angular direction.
func advance(p geom.Pose, s Segment, radius, l float64) geom.Pose {
	g := 1.0
	if s.Gear == Backward {
		g = -1
	}

	sin, cos := math.Sincos(p.Theta)

	switch s.Steering {
	case Straight:
		return geom.NewPose(p.X+g*l*cos, p.Y+g*l*sin, p.Theta)

	case Left:
		var (
			beta   = l / radius
			cx, cy = p.X - radius*sin, p.Y + radius*cos
			th     = p.Theta + g*beta
		)

		return geom.NewPose(cx+radius*math.Sin(th), cy-radius*math.Cos(th), th)

	default: // Right
		var (
			beta   = l / radius
			cx, cy = p.X + radius*sin, p.Y - radius*cos
			th     = p.Theta - g*beta
		)

		return geom.NewPose(cx-radius*math.Sin(th), cy+radius*math.Cos(th), th)
	}
}
