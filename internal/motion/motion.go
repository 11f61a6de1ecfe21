// Package motion classifies instantaneous pointer movement into discrete
// direction labels. The same label set is shared with completed-gesture
// classification so that consumers handle a single closed vocabulary.
package motion

import "github.com/ayusman/kathak/internal/geom"

// Motion identifies a classified movement direction or gesture shape. The
// string value is the public label carried on emitted events.
type Motion string

const (
	// MotionNone means no classifiable movement.
	MotionNone Motion = "none"

	// Principal directions, screen convention (y grows down).
	MotionUp    Motion = "up"
	MotionDown  Motion = "down"
	MotionLeft  Motion = "left"
	MotionRight Motion = "right"

	// Diagonal directions.
	MotionDiagonalUpLeft    Motion = "diagonal_up_left"
	MotionDiagonalUpRight   Motion = "diagonal_up_right"
	MotionDiagonalDownLeft  Motion = "diagonal_down_left"
	MotionDiagonalDownRight Motion = "diagonal_down_right"

	// Completed gesture shapes.
	MotionCircleClockwise        Motion = "circle_clockwise"
	MotionCircleCounterClockwise Motion = "circle_counter_clockwise"
	MotionTriangle               Motion = "triangle"
	MotionSquare                 Motion = "square"
	MotionZigzag                 Motion = "zigzag"
	MotionWave                   Motion = "wave"
	MotionScoopUp                Motion = "scoop_up"
	MotionScoopDown              Motion = "scoop_down"
	MotionSpiral                 Motion = "spiral"
)

// String returns the public label for m.
func (m Motion) String() string {
	return string(m)
}

// IsDirection reports whether m is one of the eight movement directions.
func (m Motion) IsDirection() bool {
	switch m {
	case MotionUp, MotionDown, MotionLeft, MotionRight,
		MotionDiagonalUpLeft, MotionDiagonalUpRight,
		MotionDiagonalDownLeft, MotionDiagonalDownRight:
		return true
	}
	return false
}

// ClassifyDirection buckets a velocity vector into one of the eight
// direction labels. Vectors shorter than minMovement classify as
// MotionNone.
//
// The buckets are strict half-open 45 degree sectors around the principal
// and diagonal axes; a vector whose angle lands exactly on a sector
// boundary classifies as MotionNone. Angles use the y-down screen
// convention, so positive angles point downward on screen.
func ClassifyDirection(v geom.Point, minMovement float64) Motion {
	if v.Length() < minMovement {
		return MotionNone
	}

	deg := geom.Degrees(v.Angle())

	switch {
	case deg > -22.5 && deg < 22.5:
		return MotionRight
	case deg > 157.5 || deg < -157.5:
		return MotionLeft
	case deg > 67.5 && deg < 112.5:
		return MotionDown
	case deg > -112.5 && deg < -67.5:
		return MotionUp
	case deg > 22.5 && deg < 67.5:
		return MotionDiagonalDownRight
	case deg > 112.5 && deg < 157.5:
		return MotionDiagonalDownLeft
	case deg > -67.5 && deg < -22.5:
		return MotionDiagonalUpRight
	case deg > -157.5 && deg < -112.5:
		return MotionDiagonalUpLeft
	}

	// Exactly on a sector boundary.
	return MotionNone
}
