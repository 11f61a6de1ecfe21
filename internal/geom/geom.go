// Package geom provides the 2D geometry primitives used by trail capture
// and gesture classification. Coordinates follow the screen convention:
// x grows right, y grows down.
package geom

import "math"

// Point is a 2D coordinate or displacement vector.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Length returns the Euclidean magnitude of p treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Angle returns the direction of p treated as a vector, in radians in
// (-pi, pi]. With y-down coordinates a positive angle points below the
// x axis on screen.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Centroid returns the mean position of points. It returns the zero
// point for an empty slice; callers enforce minimum-length preconditions
// before relying on the result.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// NormalizeAngle wraps a into the interval (-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// TurnAngle returns the absolute change of heading at point p when
// travelling prev -> p -> next, in radians in [0, pi]. A straight
// continuation yields 0; a full reversal yields pi.
func TurnAngle(prev, p, next Point) float64 {
	in := p.Sub(prev).Angle()
	out := next.Sub(p).Angle()
	return math.Abs(NormalizeAngle(out - in))
}

// VertexAngle returns the angle at vertex formed by the rays vertex->a
// and vertex->b, in radians in [0, pi]. Degenerate (zero-length) rays
// yield 0.
func VertexAngle(a, vertex, b Point) float64 {
	u := a.Sub(vertex)
	v := b.Sub(vertex)

	lu := u.Length()
	lv := v.Length()
	if lu == 0 || lv == 0 {
		return 0
	}

	cos := (u.X*v.X + u.Y*v.Y) / (lu * lv)
	// Clamp against floating point drift before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
