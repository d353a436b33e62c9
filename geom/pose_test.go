package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/geom"
)

const tol = 1e-12

func TestNormalizeAngle_Canonical(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi wraps to pi", -math.Pi, math.Pi},
		{"two pi wraps to zero", 2 * math.Pi, 0},
		{"minus three pi wraps to pi", -3 * math.Pi, math.Pi},
		{"small negative preserved", -0.25, -0.25},
		{"quarter turn plus full turn", 2*math.Pi + 0.5, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.NormalizeAngle(tc.in)
			require.InDelta(t, tc.want, got, tol)
			// result must itself be canonical
			require.Greater(t, got, -math.Pi)
			require.LessOrEqual(t, got, math.Pi)
		})
	}
}

func TestNormalizeAngle_AlwaysInInterval(t *testing.T) {
	for a := -25.0; a <= 25.0; a += 0.37 {
		got := geom.NormalizeAngle(a)
		require.Greater(t, got, -math.Pi)
		require.LessOrEqual(t, got, math.Pi)
		// must be congruent to the input mod 2π
		require.InDelta(t, math.Sin(a), math.Sin(got), 1e-9)
		require.InDelta(t, math.Cos(a), math.Cos(got), 1e-9)
	}
}

func TestAngleDelta(t *testing.T) {
	// crossing the branch cut: from 170° to -170° is a +20° step, not -340°
	a := geom.Deg2Rad(170)
	b := geom.Deg2Rad(-170)
	require.InDelta(t, geom.Deg2Rad(20), geom.AngleDelta(a, b), tol)
	require.InDelta(t, geom.Deg2Rad(-20), geom.AngleDelta(b, a), tol)
}

func TestDegRadRoundTrip(t *testing.T) {
	for deg := -720.0; deg <= 720.0; deg += 45 {
		require.InDelta(t, deg, geom.Rad2Deg(geom.Deg2Rad(deg)), 1e-9)
	}
	require.InDelta(t, math.Pi/2, geom.Deg2Rad(90), tol)
}

func TestPolar(t *testing.T) {
	r, th := geom.Polar(3, 4)
	require.InDelta(t, 5, r, tol)
	require.InDelta(t, math.Atan2(4, 3), th, tol)

	r, th = geom.Polar(0, 0)
	require.Zero(t, r)
	require.Zero(t, th)
}

func TestNewPose_NormalizesHeading(t *testing.T) {
	p := geom.NewPose(1, 2, 3*math.Pi)
	require.InDelta(t, math.Pi, p.Theta, tol)

	q := geom.NewPoseDeg(0, 0, 270)
	require.InDelta(t, -math.Pi/2, q.Theta, tol)
}

func TestRelativeTo_Identity(t *testing.T) {
	p := geom.NewPose(3, -2, 0.7)
	rel := p.RelativeTo(p)
	require.InDelta(t, 0, rel.X, tol)
	require.InDelta(t, 0, rel.Y, tol)
	require.InDelta(t, 0, rel.Theta, tol)
}

func TestRelativeTo_TranslationAndRotation(t *testing.T) {
	// ref at (1,1) facing +90°: a point one unit "ahead" of ref lies at
	// (1,2) in world coordinates and must map to (1,0) in the ref frame.
	ref := geom.NewPose(1, 1, math.Pi/2)
	p := geom.NewPose(1, 2, math.Pi)

	rel := p.RelativeTo(ref)
	require.InDelta(t, 1, rel.X, tol)
	require.InDelta(t, 0, rel.Y, tol)
	require.InDelta(t, math.Pi/2, rel.Theta, tol)
}

func TestScale(t *testing.T) {
	p := geom.NewPose(2, -4, 1.1)
	s := p.Scale(0.5)
	require.InDelta(t, 1, s.X, tol)
	require.InDelta(t, -2, s.Y, tol)
	require.InDelta(t, 1.1, s.Theta, tol)
}

func TestDistance(t *testing.T) {
	a := geom.NewPose(0, 0, 0)
	b := geom.NewPose(3, 4, 2) // heading must not matter
	require.InDelta(t, 5, a.Distance(b), tol)
	require.InDelta(t, 5, b.Distance(a), tol)
}

func TestAlmostEqual(t *testing.T) {
	a := geom.NewPose(1, 1, math.Pi)
	b := geom.NewPose(1+1e-9, 1-1e-9, -math.Pi) // -π normalizes to π
	require.True(t, a.AlmostEqual(b, 1e-6))
	require.False(t, a.AlmostEqual(geom.NewPose(1.1, 1, math.Pi), 1e-6))
}
