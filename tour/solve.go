// Dispatcher: the canonical entry points for waypoint ordering.
//
//   - SolveWithMatrix — route a prebuilt distance matrix to Exact or
//     Greedy according to Strategy(n, opts.Threshold).
//   - SolveWithPoses  — materialize the matrix from a DistanceFunc oracle
//     first, then delegate to SolveWithMatrix.
package tour

import "github.com/katalvlaran/lvlpath/geom"

// SolveWithMatrix validates inputs and routes to the method chosen by
// Strategy. A single waypoint yields the trivial zero-cost tour; an
// empty matrix is ErrNoWaypoints.
//
// Complexity: validation O(n²), then per chosen method (see Exact and
// Greedy).
func SolveWithMatrix(dist [][]float64, opts Options) (Tour, error) {
	n, err := validateDist(dist)
	if err != nil {
		return Tour{}, err
	}
	if err = validateOptions(opts); err != nil {
		return Tour{}, err
	}
	if err = validateStart(n, opts.Start); err != nil {
		return Tour{}, err
	}

	if Strategy(n, opts.Threshold) == ExactPermutation {
		return Exact(dist, opts)
	}

	return Greedy(dist, opts)
}

// SolveWithPoses builds the pairwise cost matrix via the oracle and
// delegates to SolveWithMatrix.
//
// Complexity: n·(n−1) oracle calls plus the dispatched method.
func SolveWithPoses(poses []geom.Pose, dist DistanceFunc, opts Options) (Tour, error) {
	m, err := DistanceMatrix(poses, dist)
	if err != nil {
		return Tour{}, err
	}

	return SolveWithMatrix(m, opts)
}
