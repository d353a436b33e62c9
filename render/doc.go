// Package render turns a planned tour into a single picture.
//
// What: one polyline per turning radius (sampled along the driven arc
// length), black waypoint markers with heading arrows, and a legend
// keyed "r=0.5", "r=1.0", and so on. Radii cycle through the classic
// palette red, green, blue, orange.
//
// The plot is built with gonum.org/v1/plot; Save writes any format the
// extension selects (.png, .svg, .pdf).
package render
