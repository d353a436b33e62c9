package geom

import (
	"math"

	"github.com/jbeda/geom"
)

// Pose is an oriented point in the plane: a position (Coord) plus a
// heading Theta in radians.
//
// Invariant: Theta is stored normalized to (-π, π]. Constructors and
// transforms in this package maintain the invariant; code mutating Theta
// directly must re-normalize via NormalizeAngle.
type Pose struct {
	geom.Coord         // X, Y position in world units
	Theta      float64 // heading, radians, normalized to (-π, π]
}

// NewPose builds a Pose from world coordinates and a heading in radians,
// normalizing the heading.
func NewPose(x, y, theta float64) Pose {
	return Pose{Coord: geom.Coord{X: x, Y: y}, Theta: NormalizeAngle(theta)}
}

// NewPoseDeg builds a Pose from world coordinates and a heading in
// degrees. This is the conversion applied at the waypoint input boundary;
// everything downstream works in radians.
func NewPoseDeg(x, y, thetaDeg float64) Pose {
	return NewPose(x, y, Deg2Rad(thetaDeg))
}

// NormalizeAngle wraps a into the canonical interval (-π, π].
//
// NormalizeAngle(-π) == π by convention, so the result is unique for
// every input including the branch cut.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a <= -math.Pi:
		a += 2 * math.Pi
	case a > math.Pi:
		a -= 2 * math.Pi
	}

	return a
}

// AngleDelta returns the normalized difference b-a in (-π, π].
func AngleDelta(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Polar decomposes the vector (x, y) into its length r and angle theta.
// Polar(0, 0) returns (0, 0); no special casing is required downstream.
func Polar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// RelativeTo expresses p in the reference frame of ref: ref maps to the
// origin with heading zero, and p is translated and rotated accordingly.
// The returned heading is normalized.
func (p Pose) RelativeTo(ref Pose) Pose {
	var (
		d        = p.Coord.Minus(ref.Coord)
		sin, cos = math.Sincos(ref.Theta)
	)

	return Pose{
		Coord: geom.Coord{
			X: d.X*cos + d.Y*sin,
			Y: -d.X*sin + d.Y*cos,
		},
		Theta: NormalizeAngle(p.Theta - ref.Theta),
	}
}

// Scale multiplies the position by k, leaving the heading untouched.
// Scaling by 1/r normalizes a planning problem to unit turning radius.
func (p Pose) Scale(k float64) Pose {
	return Pose{Coord: p.Coord.Times(k), Theta: p.Theta}
}

// Distance returns the Euclidean distance between the positions of p and
// q, ignoring headings.
func (p Pose) Distance(q Pose) float64 {
	d := p.Coord.Minus(q.Coord)

	return math.Hypot(d.X, d.Y)
}

// AlmostEqual reports whether p and q coincide within tol, comparing
// positions component-wise and headings by normalized delta.
func (p Pose) AlmostEqual(q Pose, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol &&
		math.Abs(p.Y-q.Y) <= tol &&
		math.Abs(AngleDelta(p.Theta, q.Theta)) <= tol
}
