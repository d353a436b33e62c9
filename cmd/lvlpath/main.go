// Command lvlpath orders waypoints from a file by drivable path length
// and renders the resulting Reeds-Shepp trajectories, one curve per
// turning radius.
//
// Usage:
//
//	lvlpath -waypoints waypoints.txt -radii 0.5,1,2,3 -out tour.png
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/render"
	"github.com/katalvlaran/lvlpath/tour"
	"github.com/katalvlaran/lvlpath/trajectory"
	"github.com/katalvlaran/lvlpath/waypointfile"
)

func main() {
	var (
		waypointsPath = flag.String("waypoints", "waypoints.txt", "waypoint file, one x,y,heading_degrees record per line")
		radiiSpec     = flag.String("radii", "0.5,1,2,3", "comma-separated turning radii to draw")
		nominalRadius = flag.Float64("nominal-radius", 1.0, "radius the visiting order is computed at")
		threshold     = flag.Int("threshold", tour.DefaultThreshold, "waypoint count below which the exact search runs")
		start         = flag.Int("start", 0, "index of the waypoint the tour starts from")
		outPath       = flag.String("out", "tour.png", "output image path; empty to skip rendering")
		sampleStep    = flag.Float64("sample-step", 0.05, "arc-length spacing of rendered samples")
	)
	flag.Parse()

	poses, err := waypointfile.ReadFile(*waypointsPath)
	if err != nil {
		log.Fatalf("read waypoints: %v", err)
	}
	if len(poses) == 0 {
		log.Fatalf("no usable waypoints in %s", *waypointsPath)
	}
	log.Printf("loaded %d waypoints from %s", len(poses), *waypointsPath)

	radii, err := parseRadii(*radiiSpec)
	if err != nil {
		log.Fatalf("parse radii: %v", err)
	}

	opts := trajectory.Options{
		Radii:         radii,
		NominalRadius: *nominalRadius,
		Tour: tour.Options{
			Threshold: *threshold,
			Start:     *start,
		},
	}

	method := tour.Strategy(len(poses), *threshold)
	log.Printf("ordering %d waypoints (%s)", len(poses), method)

	plan, err := trajectory.PlanTour(poses, opts)
	if err != nil {
		log.Fatalf("plan tour: %v", err)
	}

	log.Printf("order: %v (cost %.3f at r=%.2f)", plan.Tour.Order, plan.Tour.Cost, *nominalRadius)
	for _, tr := range plan.Trajectories {
		log.Printf("  r=%.2f  length=%.3f  legs=%d", tr.Radius, tr.Length, len(tr.Paths))
	}

	if *outPath == "" {
		return
	}

	ropts := render.DefaultOptions()
	ropts.SampleStep = *sampleStep
	if err = render.Save(plan, ropts, *outPath); err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("wrote %s", *outPath)
}

func parseRadii(spec string) ([]float64, error) {
	parts := strings.Split(spec, ",")
	radii := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("radius %q: %w", part, err)
		}
		radii = append(radii, r)
	}
	if len(radii) == 0 {
		return nil, fmt.Errorf("no radii in %q", spec)
	}

	return radii, nil
}
