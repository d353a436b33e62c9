package tour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/tour"
)

// gridDist builds Euclidean distances for n points on a unit-spaced line.
func lineDist(n int) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Abs(float64(i - j))
		}
	}

	return dist
}

func TestGreedy_VisitsEachWaypointOnce(t *testing.T) {
	const n = 12 // above the default threshold
	res, err := tour.Greedy(lineDist(n), tour.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	require.False(t, math.IsInf(res.Cost, 0))
	require.False(t, math.IsNaN(res.Cost))

	seen := make([]bool, n)
	for _, idx := range res.Order {
		require.False(t, seen[idx], "waypoint %d revisited", idx)
		seen[idx] = true
	}
}

func TestGreedy_LineIsOptimalForGreedy(t *testing.T) {
	// on a line the nearest-neighbor walk from 0 is the optimal sweep
	res, err := tour.Greedy(lineDist(6), tour.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Order)
	require.Equal(t, 5.0, res.Cost)
}

func TestGreedy_TieBreakLowestIndex(t *testing.T) {
	// waypoints 1 and 2 are equally near to 0: the lower index must win
	dist := [][]float64{
		{0, 2, 2},
		{2, 0, 3},
		{2, 3, 0},
	}
	res, err := tour.Greedy(dist, tour.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
	require.Equal(t, 5.0, res.Cost)
}

func TestGreedy_CanBeWorseThanExact(t *testing.T) {
	// classic trap: the greedy short hop first forces expensive edges
	// later, while the exact search routes through waypoint 2 first
	dist := [][]float64{
		{0, 1, 1.1, 50},
		{1, 0, 100, 1},
		{1.1, 1, 0, 100},
		{50, 1, 100, 0},
	}

	g, err := tour.Greedy(dist, tour.DefaultOptions())
	require.NoError(t, err)
	e, err := tour.Exact(dist, tour.DefaultOptions())
	require.NoError(t, err)
	require.Less(t, e.Cost, g.Cost)
	require.Equal(t, 3.1, e.Cost)
}

func TestGreedy_StartRespected(t *testing.T) {
	opts := tour.DefaultOptions()
	opts.Start = 3
	res, err := tour.Greedy(lineDist(5), opts)
	require.NoError(t, err)
	require.Equal(t, 3, res.Order[0])
}
