package reedsshepp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/geom"
	"github.com/katalvlaran/lvlpath/reedsshepp"
)

func TestShortestPath_InvalidRadius(t *testing.T) {
	a := geom.NewPose(0, 0, 0)
	b := geom.NewPose(1, 1, 0)

	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := reedsshepp.ShortestPath(a, b, r)
		require.ErrorIs(t, err, reedsshepp.ErrInvalidRadius)
	}
}

func TestShortestPath_DegenerateIdentity(t *testing.T) {
	// start == goal must yield a zero-length trivial path, not an error
	p := geom.NewPose(3, -4, 1.25)

	path, err := reedsshepp.ShortestPath(p, p, 2)
	require.NoError(t, err)
	require.Empty(t, path.Segments)
	require.Zero(t, path.Length)
}

func TestShortestPath_PureStraight(t *testing.T) {
	start := geom.NewPose(0, 0, 0)
	goal := geom.NewPose(10, 0, 0)

	path, err := reedsshepp.ShortestPath(start, goal, 1)
	require.NoError(t, err)
	require.Len(t, path.Segments, 1)
	require.Equal(t, reedsshepp.Straight, path.Segments[0].Steering)
	require.Equal(t, reedsshepp.Forward, path.Segments[0].Gear)
	require.InDelta(t, 10, path.Segments[0].Length, 1e-9)
	require.InDelta(t, 10, path.Length, 1e-9)
}

func TestShortestPath_TurnInPlace(t *testing.T) {
	// 180° reversal in place at r=1: the optimum is the three-arc word
	// L(π/3) R(π/3) L(π/3) of total length π.
	start := geom.NewPose(0, 0, 0)
	goal := geom.NewPose(0, 0, math.Pi)

	path, err := reedsshepp.ShortestPath(start, goal, 1)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, path.Length, 1e-9)
	for _, s := range path.Segments {
		require.NotEqual(t, reedsshepp.Straight, s.Steering, "turn in place must use arcs only")
	}
}

func TestShortestPath_LateralShift(t *testing.T) {
	// pure lateral offset of two radii at r=1: the four-arc CCu|CuC word
	// beats the C|C|C candidate of length 4π/3, so the winner must reach
	// the goal in arcs only and undercut that bound.
	start := geom.NewPose(0, 0, 0)
	goal := geom.NewPose(0, 2, 0)

	path, err := reedsshepp.ShortestPath(start, goal, 1)
	require.NoError(t, err)
	require.Less(t, path.Length, 4*math.Pi/3)
	require.InDelta(t, 3.6469531638739507, path.Length, 1e-9)
	for _, s := range path.Segments {
		require.NotEqual(t, reedsshepp.Straight, s.Steering)
	}
	require.True(t, path.EndPose(start).AlmostEqual(goal, 1e-9))
}

func TestShortestPath_LengthEqualsSegmentSum(t *testing.T) {
	start := geom.NewPose(-2, 1, 0.3)
	goal := geom.NewPose(4, -3, -2.1)

	path, err := reedsshepp.ShortestPath(start, goal, 1.5)
	require.NoError(t, err)

	var sum float64
	for _, s := range path.Segments {
		require.GreaterOrEqual(t, s.Length, 0.0)
		sum += s.Length
	}
	require.InDelta(t, path.Length, sum, 1e-9)
}

func TestShortestPath_ScaleLinearity(t *testing.T) {
	// Reeds-Shepp length scales linearly with radius for a fixed pair of
	// poses in the same relative configuration: poses scale with k too.
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		var (
			a = randomPose(rng, 8)
			b = randomPose(rng, 8)
			r = 0.5 + 2*rng.Float64()
		)
		base, err := reedsshepp.ShortestPath(a, b, r)
		require.NoError(t, err)

		for _, k := range []float64{0.25, 2, 10} {
			scaled, err := reedsshepp.ShortestPath(a.Scale(k), b.Scale(k), k*r)
			require.NoError(t, err)
			require.InDelta(t, base.Length*k, scaled.Length, 1e-6*(1+base.Length*k))
		}
	}
}

func TestShortestPath_ReconstructsGoal(t *testing.T) {
	// composing the winning word's segments from the start pose must
	// land on the goal pose within 1e-6
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 40; i++ {
		var (
			start = randomPose(rng, 10)
			goal  = randomPose(rng, 10)
			radii = []float64{0.5, 1, 2, 3}
			r     = radii[rng.Intn(len(radii))]
		)

		path, err := reedsshepp.ShortestPath(start, goal, r)
		require.NoError(t, err)

		end := path.EndPose(start)
		require.True(t, end.AlmostEqual(goal, 1e-6),
			"case %d: start=%+v goal=%+v r=%v end=%+v", i, start, goal, r, end)
	}
}

func TestShortestPath_Symmetries(t *testing.T) {
	// swapping start and goal reverses the optimal word (time-flip family
	// member), mirroring across the x-axis reflects it; both preserve length
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		var (
			a = randomPose(rng, 6)
			b = randomPose(rng, 6)
		)
		fwd, err := reedsshepp.ShortestPath(a, b, 1)
		require.NoError(t, err)

		rev, err := reedsshepp.ShortestPath(b, a, 1)
		require.NoError(t, err)
		require.InDelta(t, fwd.Length, rev.Length, 1e-9)

		am := geom.NewPose(a.X, -a.Y, -a.Theta)
		bm := geom.NewPose(b.X, -b.Y, -b.Theta)
		mir, err := reedsshepp.ShortestPath(am, bm, 1)
		require.NoError(t, err)
		require.InDelta(t, fwd.Length, mir.Length, 1e-9)
	}
}

func TestShortestPath_EuclideanLowerBound(t *testing.T) {
	// no feasible bounded-curvature path is shorter than the straight
	// line between the endpoints
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 20; i++ {
		var (
			a = randomPose(rng, 10)
			b = randomPose(rng, 10)
		)
		path, err := reedsshepp.ShortestPath(a, b, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, path.Length+1e-9, a.Distance(b))
	}
}

func TestPath_Sample(t *testing.T) {
	start := geom.NewPose(0, 0, 0)
	goal := geom.NewPose(4, 4, math.Pi/2)

	path, err := reedsshepp.ShortestPath(start, goal, 1)
	require.NoError(t, err)

	pts := path.Sample(start, 0.1)
	require.NotEmpty(t, pts)
	// first sample is the start pose, last one the goal pose
	require.True(t, pts[0].AlmostEqual(start, 1e-9))
	require.True(t, pts[len(pts)-1].AlmostEqual(goal, 1e-6))

	// consecutive samples are at most one step apart (chord ≤ arc)
	for i := 1; i < len(pts); i++ {
		require.LessOrEqual(t, pts[i-1].Distance(pts[i]), 0.1+1e-9)
	}
}

func randomPose(rng *rand.Rand, span float64) geom.Pose {
	return geom.NewPose(
		(2*rng.Float64()-1)*span,
		(2*rng.Float64()-1)*span,
		(2*rng.Float64()-1)*math.Pi,
	)
}
