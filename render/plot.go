package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/jbeda/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlpath/trajectory"
)

// ErrEmptyPlan indicates a plan without trajectories.
var ErrEmptyPlan = errors.New("render: plan has no trajectories")

// palette matches the classic demo colors: red, green, blue, orange.
// Radii beyond four cycle.
var palette = []color.RGBA{
	{R: 255, A: 255},
	{G: 178, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 153, A: 255},
}

// Options controls sampling density and decoration sizes, all in world
// units except the output dimensions.
type Options struct {
	Title       string
	SampleStep  float64
	ArrowLength float64
	Margin      float64
	Width       vg.Length
	Height      vg.Length
}

// DefaultOptions renders a square 8-inch figure with arc sampling fine
// enough for smooth curves at sub-meter radii.
func DefaultOptions() Options {
	return Options{
		Title:       "Reeds-Shepp trajectories",
		SampleStep:  0.05,
		ArrowLength: 0.8,
		Margin:      5,
		Width:       8 * vg.Inch,
		Height:      8 * vg.Inch,
	}
}

// Plot builds the figure for the plan: one line per radius, waypoint
// markers with heading arrows, axis bounds covering every waypoint plus
// the margin.
func Plot(plan trajectory.Plan, opts Options) (*plot.Plot, error) {
	if len(plan.Trajectories) == 0 {
		return nil, ErrEmptyPlan
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, tr := range plan.Trajectories {
		line, err := trajectoryLine(tr, opts.SampleStep)
		if err != nil {
			return nil, fmt.Errorf("render: radius %.2f: %w", tr.Radius, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("r=%.1f", tr.Radius), line)
	}

	if err := addWaypoints(p, plan, opts.ArrowLength); err != nil {
		return nil, err
	}
	setBounds(p, plan, opts.Margin)

	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Save builds the figure and writes it to path; the extension picks the
// format.
func Save(plan trajectory.Plan, opts Options, path string) error {
	p, err := Plot(plan, opts)
	if err != nil {
		return err
	}
	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("render: save: %w", err)
	}

	return nil
}

func trajectoryLine(tr trajectory.Trajectory, step float64) (*plotter.Line, error) {
	samples := tr.Sample(step)
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{X: s.X, Y: s.Y}
	}

	return plotter.NewLine(pts)
}

// addWaypoints marks each visited pose and draws a short arrow along
// its heading.
func addWaypoints(p *plot.Plot, plan trajectory.Plan, arrowLen float64) error {
	pts := make(plotter.XYs, len(plan.Waypoints))
	for i, wp := range plan.Waypoints {
		pts[i] = plotter.XY{X: wp.Pose.X, Y: wp.Pose.Y}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("render: waypoints: %w", err)
	}
	scatter.GlyphStyle.Color = color.Black
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	for _, wp := range plan.Waypoints {
		arrow, aerr := headingArrow(wp.Pose.Coord, wp.Pose.Theta, arrowLen)
		if aerr != nil {
			return fmt.Errorf("render: arrow %d: %w", wp.Index, aerr)
		}
		arrow.Color = color.Black
		arrow.Width = vg.Points(1)
		p.Add(arrow)
	}

	return nil
}

// headingArrow is a polyline shaft-plus-barbs; the barbs fold back at
// 150 degrees from the heading.
func headingArrow(at geom.Coord, theta, length float64) (*plotter.Line, error) {
	sin, cos := math.Sincos(theta)
	dir := geom.Coord{X: cos, Y: sin}

	var (
		tip   = at.Plus(dir.Times(length))
		barbL = tip.Plus(rotate(dir, 5*math.Pi/6).Times(0.35 * length))
		barbR = tip.Plus(rotate(dir, -5*math.Pi/6).Times(0.35 * length))
	)

	return plotter.NewLine(plotter.XYs{
		{X: at.X, Y: at.Y},
		{X: tip.X, Y: tip.Y},
		{X: barbL.X, Y: barbL.Y},
		{X: tip.X, Y: tip.Y},
		{X: barbR.X, Y: barbR.Y},
	})
}

func rotate(v geom.Coord, angle float64) geom.Coord {
	sin, cos := math.Sincos(angle)

	return geom.Coord{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// setBounds fits the axes to the waypoint bounding box plus margin, so
// every radius variant stays in frame.
func setBounds(p *plot.Plot, plan trajectory.Plan, margin float64) {
	if len(plan.Waypoints) == 0 {
		return
	}

	first := plan.Waypoints[0].Pose.Coord
	box := geom.Rect{Min: first, Max: first}
	for _, wp := range plan.Waypoints[1:] {
		box.ExpandToContainCoord(wp.Pose.Coord)
	}

	p.X.Min, p.X.Max = box.Min.X-margin, box.Max.X+margin
	p.Y.Min, p.Y.Max = box.Min.Y-margin, box.Max.Y+margin
}
