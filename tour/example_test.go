package tour_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/geom"
	"github.com/katalvlaran/lvlpath/tour"
)

// ExampleSolveWithPoses orders four oriented waypoints by Euclidean
// distance. Below the threshold the dispatcher runs the exact search.
func ExampleSolveWithPoses() {
	poses := []geom.Pose{
		geom.NewPoseDeg(0, 0, 0),
		geom.NewPoseDeg(9, 0, 0),
		geom.NewPoseDeg(3, 0, 90),
		geom.NewPoseDeg(6, 0, -90),
	}
	euclid := func(a, b geom.Pose) (float64, error) { return a.Distance(b), nil }

	res, err := tour.SolveWithPoses(poses, euclid, tour.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println("order:", res.Order)
	fmt.Println("cost:", res.Cost)
	// Output:
	// order: [0 2 3 1]
	// cost: 9
}

// ExampleStrategy shows the pure exact-vs-greedy selection rule.
func ExampleStrategy() {
	fmt.Println(tour.Strategy(6, tour.DefaultThreshold))
	fmt.Println(tour.Strategy(25, tour.DefaultThreshold))
	// Output:
	// exact-permutation
	// greedy-nearest-neighbor
}
