package tour

import "math"

// Greedy builds a tour with the nearest-neighbor heuristic: starting at
// opts.Start, repeatedly append the unvisited waypoint closest to the
// last-placed one.
//
// Ties are broken toward the lowest original input index (ascending scan
// with a strict < test), so the result is reproducible. The heuristic
// never backtracks and gives no optimality guarantee; see the package
// doc for the documented limitation.
//
// Complexity: O(n²) time, O(n) space.
func Greedy(dist [][]float64, opts Options) (Tour, error) {
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

	var (
		order   = make([]int, 0, n)
		visited = make([]bool, n)
		current = opts.Start
		total   float64
		nearest int
		bestW   float64
		j       int
	)
	order = append(order, current)
	visited[current] = true

	for len(order) < n {
		nearest = -1
		bestW = math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if dist[current][j] < bestW {
				bestW = dist[current][j]
				nearest = j
			}
		}
		// always found: the matrix is finite and at least one j is unvisited
		visited[nearest] = true
		order = append(order, nearest)
		total += bestW
		current = nearest
	}

	return Tour{Order: order, Cost: round1e9(total)}, nil
}
