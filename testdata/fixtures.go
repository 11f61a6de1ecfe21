// Package testdata generates synthetic pointer trails for tests. All
// generators use the y-down screen convention that the recognition
// pipeline assumes.
package testdata

import (
	"math"

	"github.com/ayusman/kathak/internal/geom"
)

// Line returns n evenly spaced points from a to b inclusive.
func Line(a, b geom.Point, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = geom.Point{
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
		}
	}
	return pts
}

// Arc returns points on a circle of radius r centered at (cx, cy),
// starting at startDeg and sweeping sweepDeg degrees over steps points.
// A positive sweep is clockwise on screen.
func Arc(cx, cy, r, startDeg, sweepDeg float64, steps int) []geom.Point {
	pts := make([]geom.Point, steps)
	for i := 0; i < steps; i++ {
		a := geom.Radians(startDeg + sweepDeg*float64(i)/float64(steps-1))
		pts[i] = geom.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// Spiral returns points sweeping sweepDeg degrees around (cx, cy) while
// the radius moves linearly from r0 to r1.
func Spiral(cx, cy, r0, r1, sweepDeg float64, steps int) []geom.Point {
	pts := make([]geom.Point, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		r := r0 + t*(r1-r0)
		a := geom.Radians(sweepDeg * t)
		pts[i] = geom.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// Zigzag returns a trail whose x coordinate snaps between 0 and width on
// every point while y advances by rise per point. reversals+2 points are
// produced, giving the requested number of horizontal direction changes.
func Zigzag(width, rise float64, reversals int) []geom.Point {
	n := reversals + 2
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		x := 0.0
		if i%2 == 1 {
			x = width
		}
		pts[i] = geom.Point{X: x, Y: rise * float64(i)}
	}
	return pts
}

// Wave returns a sine trail advancing steadily in x over the given number
// of cycles.
func Wave(amplitude, length, cycles float64, steps int) []geom.Point {
	pts := make([]geom.Point, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		pts[i] = geom.Point{
			X: length * t,
			Y: amplitude * math.Sin(2*math.Pi*cycles*t),
		}
	}
	return pts
}

// Scoop returns a parabolic trail that starts at (0, 0), dips to roughly
// depth (negative values rise on screen) near its midpoint, and ends at
// endY.
func Scoop(depth, endY float64, steps int) []geom.Point {
	pts := make([]geom.Point, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		// Parabola through (0,0), (0.5,depth), (1,endY).
		y := 4*t*(1-t)*depth + t*t*endY
		pts[i] = geom.Point{X: 100 * t, Y: y}
	}
	return pts
}

// Staircase returns a battlement-shaped trail: horizontal runs joined by
// alternating vertical runs, one right-angle corner per bend. Each run
// contributes its midpoint and endpoint, so only the bends read as
// corners.
func Staircase(step float64, bends int) []geom.Point {
	pts := []geom.Point{{X: 0, Y: 0}}
	cur := geom.Point{}
	horizontal := true
	dir := -1.0 // first vertical run goes up on screen
	for i := 0; i <= bends; i++ {
		var delta geom.Point
		if horizontal {
			delta = geom.Point{X: step}
		} else {
			delta = geom.Point{Y: dir * step}
			dir = -dir
		}
		horizontal = !horizontal
		pts = append(pts, cur.Add(delta.Scale(0.5)), cur.Add(delta))
		cur = cur.Add(delta)
	}
	return pts
}

// Velocities returns the per-step displacement vectors of a trail, the
// same series the trail buffer records.
func Velocities(points []geom.Point) []geom.Point {
	if len(points) < 2 {
		return nil
	}
	out := make([]geom.Point, len(points)-1)
	for i := 1; i < len(points); i++ {
		out[i-1] = points[i].Sub(points[i-1])
	}
	return out
}
