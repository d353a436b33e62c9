package reedsshepp

import (
	"math"

	"github.com/katalvlaran/lvlpath/geom"
)

// zeroTol is the magnitude below which a segment is treated as empty and
// dropped from the winning word. Unit-radius scale.
const zeroTol = 1e-12

// ShortestPath returns the minimum-length feasible path from start to
// goal for the given turning radius.
//
// Contract:
//   - radius must be positive and finite (ErrInvalidRadius otherwise),
//   - start and goal share the angular convention of geom (radians,
//     normalized on construction),
//   - start == goal is valid and yields a zero-length Path.
//
// The returned Path carries world-unit segment lengths (already rescaled
// by radius) and Length equal to their sum. Determinism: on exact length
// ties the first feasible variant in catalog order wins.
//
// Complexity: O(1) — a fixed 48-variant evaluation and one reduction.
func ShortestPath(start, goal geom.Pose, radius float64) (Path, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Path{}, ErrInvalidRadius
	}

	// Normalize: goal in the start frame, distances in turning-radius units.
	rel := goal.RelativeTo(start).Scale(1 / radius)

	var (
		best    []element
		bestLen = math.Inf(1)
		elems   []element
		ok      bool
		l       float64
	)
	for _, word := range catalog {
		if elems, ok = word(rel.X, rel.Y, rel.Theta); !ok {
			continue
		}
		if l = unitLength(elems); l < bestLen {
			bestLen = l
			best = elems
		}
	}
	if best == nil {
		// Unreachable with a complete catalog; see package doc.
		return Path{}, ErrNoFeasiblePath
	}

	// Rescale the winning word into world units, dropping empty segments.
	segs := make([]Segment, 0, len(best))
	for _, e := range best {
		if e.param <= zeroTol {
			continue
		}
		segs = append(segs, Segment{
			Steering: e.steering,
			Gear:     e.gear,
			Length:   e.param * radius,
		})
	}

	return Path{Segments: segs, Radius: radius, Length: bestLen * radius}, nil
}

// unitLength sums element magnitudes; elements are canonicalized, so no
// absolute values are needed.
func unitLength(elems []element) float64 {
	var sum float64
	for _, e := range elems {
		sum += e.param
	}

	return sum
}
