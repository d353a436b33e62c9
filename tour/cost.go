package tour

import (
	"math"

	"github.com/katalvlaran/lvlpath/geom"
)

// roundScale controls final cost stabilization precision (1e-9), keeping
// costs identical across platforms without affecting which ordering wins.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// DistanceMatrix queries the oracle for every ordered pair of poses and
// returns the n×n cost matrix. The diagonal is zero by definition and
// the oracle is not consulted for it.
//
// The matrix is fully materialized so that the factorial exact search
// pays for each pairwise path computation exactly once.
//
// Complexity: n·(n−1) oracle calls, O(n²) memory.
func DistanceMatrix(poses []geom.Pose, dist DistanceFunc) ([][]float64, error) {
	if dist == nil {
		return nil, ErrNilDistanceFunc
	}
	n := len(poses)
	if n == 0 {
		return nil, ErrNoWaypoints
	}

	var (
		out = make([][]float64, n)
		i   int
		j   int
		w   float64
		err error
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if w, err = dist(poses[i], poses[j]); err != nil {
				return nil, err
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, ErrBadDistance
			}
			out[i][j] = w
		}
	}

	return out, nil
}

// Cost sums the consecutive open-path edges of order against dist and
// stabilizes the result. Indices and entries are validated, so the
// helper is safe on caller-constructed orders.
//
// Complexity: O(n) after an O(n²) shape validation of dist.
func Cost(dist [][]float64, order []int) (float64, error) {
	n, err := validateDist(dist)
	if err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < len(order); i++ {
		if order[i] < 0 || order[i] >= n {
			return 0, ErrStartOutOfRange
		}
		if i > 0 {
			sum += dist[order[i-1]][order[i]]
		}
	}

	return round1e9(sum), nil
}

// openPathCost is the unvalidated hot-path variant used inside the
// searches, where the matrix has already been validated.
func openPathCost(dist [][]float64, order []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(order); i++ {
		sum += dist[order[i-1]][order[i]]
	}

	return sum
}
