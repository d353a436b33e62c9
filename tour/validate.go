// Validation helpers shared by the exact and greedy solvers.
//
// All checks are performed once, up front, in O(n²); the search inner
// loops then index the matrix without re-validating entries.
package tour

import "math"

// diagTol is the structural tolerance for the zero-diagonal check. It is
// intentionally tighter than any realistic path length.
const diagTol = 1e-9

// validateDist verifies the distance matrix shape and entries and
// returns the matrix order n.
//
// Contract: square n×n, n ≥ 1; every entry finite and non-negative;
// diagonal zero within diagTol.
func validateDist(dist [][]float64) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrNoWaypoints
	}

	var (
		i int
		j int
		w float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			w = dist[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return 0, ErrBadDistance
			}
		}
		if dist[i][i] > diagTol {
			return 0, ErrBadDistance
		}
	}

	return n, nil
}

// validateOptions checks option consistency independent of the matrix.
func validateOptions(opts Options) error {
	if opts.Threshold < 0 {
		return ErrBadThreshold
	}

	return nil
}

// validateStart checks the fixed start index against the matrix order.
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
