package tour

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Exact finds the globally optimal visiting order by enumerating every
// permutation of the waypoints that keeps opts.Start first.
//
// Convention (documented per the package doc): orderings are evaluated as
// open paths, so fixing the start does not lose optimal solutions among
// tours beginning there; the original input order always starts at the
// first waypoint, which makes exact and greedy results comparable. The
// remaining n−1 indices are enumerated in lexicographic order via
// gonum's permutation generator and the first optimum is kept, which
// realizes the lowest-input-index tie-break.
//
// Complexity: O((n−1)! · n) time, O(n) extra space. Affordable only for
// n below the dispatcher threshold.
func Exact(dist [][]float64, opts Options) (Tour, error) {
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
	if n == 1 {
		return Tour{Order: []int{opts.Start}, Cost: 0}, nil
	}

	// rest holds all indices except the fixed start, in ascending order;
	// permutations of positions into rest stay lexicographic over the
	// original indices.
	rest := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != opts.Start {
			rest = append(rest, i)
		}
	}

	var (
		gen       = combin.NewPermutationGenerator(len(rest), len(rest))
		perm      = make([]int, len(rest))
		candidate = make([]int, n)
		best      = make([]int, n)
		bestCost  = math.Inf(1)
		cost      float64
		i         int
	)
	candidate[0] = opts.Start

	for gen.Next() {
		gen.Permutation(perm)
		for i = 0; i < len(perm); i++ {
			candidate[i+1] = rest[perm[i]]
		}
		// strict < keeps the first (lexicographically smallest) optimum
		if cost = openPathCost(dist, candidate); cost < bestCost {
			bestCost = cost
			copy(best, candidate)
		}
	}

	return Tour{Order: best, Cost: round1e9(bestCost)}, nil
}
