// Package gesture classifies a completed pointer trail into a shape or
// pattern label and scores the classification. Detectors are closed-form
// geometric heuristics evaluated in a fixed priority order; the first one
// that claims the trail wins.
package gesture

import (
	"math"

	"github.com/ayusman/kathak/internal/geom"
	"github.com/ayusman/kathak/internal/motion"
)

// Detector thresholds.
const (
	// minCircleRotation is the total sweep a trail must accumulate around
	// its centroid to count as a circle (270 degrees).
	minCircleRotation = 1.5 * math.Pi
	// circleConsistencyTol is how far a single angular step may run against
	// the accumulated rotation before the circle detector gives up.
	circleConsistencyTol = math.Pi / 4
	// cornerTurn is the heading change that marks a trail point as a corner.
	cornerTurn = math.Pi / 3
	// rightAngleTol is the tolerance around 90 degrees for square corners.
	rightAngleTol = 30.0
	// scoopDepth is the vertical dip or rise a scoop must reach.
	scoopDepth = 30.0
	// spiralMonotoneRatio is the fraction of centroid-distance steps that
	// must move the same way for a spiral.
	spiralMonotoneRatio = 0.7
)

// Minimum sample counts per detector.
const (
	minTrianglePoints   = 6
	minSquarePoints     = 8
	minZigzagVelocity   = 6
	minZigzagChanges    = 3
	minWavePoints       = 8
	minWaveReversals    = 3
	minScoopPoints      = 5
	minSpiralPoints     = 10
	minSquareRightTurns = 3
)

// Recognize classifies a completed trail. Detectors run in priority order:
// circle, triangle, square, zigzag, wave, scoop, spiral; if none claims the
// trail the overall first-to-last displacement is bucketed as a direction.
// circleSegments and minMovement come from live configuration.
func Recognize(points, velocities []geom.Point, circleSegments int, minMovement float64) motion.Motion {
	if m := detectCircle(points, circleSegments); m != motion.MotionNone {
		return m
	}
	if m := detectShape(points); m != motion.MotionNone {
		return m
	}
	if m := detectZigzag(velocities); m != motion.MotionNone {
		return m
	}
	if m := detectWave(points); m != motion.MotionNone {
		return m
	}
	if m := detectScoop(points); m != motion.MotionNone {
		return m
	}
	if m := detectSpiral(points); m != motion.MotionNone {
		return m
	}
	return overallDirection(points, minMovement)
}

// detectCircle walks the trail's angles around its centroid, accumulating
// the signed rotation. From the third sample on, a step that runs against
// the accumulated direction by more than circleConsistencyTol aborts the
// detector; a consistent sweep beyond minCircleRotation classifies as a
// circle, clockwise for positive totals under the y-down convention.
func detectCircle(points []geom.Point, segmentsRequired int) motion.Motion {
	if len(points) < segmentsRequired || len(points) < 2 {
		return motion.MotionNone
	}

	center := geom.Centroid(points)
	total := 0.0
	prev := points[0].Sub(center).Angle()

	for i := 1; i < len(points); i++ {
		angle := points[i].Sub(center).Angle()
		diff := geom.NormalizeAngle(angle - prev)

		if i >= 2 {
			if total > 0 && diff < -circleConsistencyTol {
				return motion.MotionNone
			}
			if total < 0 && diff > circleConsistencyTol {
				return motion.MotionNone
			}
		}

		total += diff
		prev = angle
	}

	if math.Abs(total) > minCircleRotation {
		if total > 0 {
			return motion.MotionCircleClockwise
		}
		return motion.MotionCircleCounterClockwise
	}
	return motion.MotionNone
}

// cornerIndices returns the interior trail indices whose heading changes
// by more than cornerTurn.
func cornerIndices(points []geom.Point) []int {
	var corners []int
	for i := 1; i < len(points)-1; i++ {
		if geom.TurnAngle(points[i-1], points[i], points[i+1]) > cornerTurn {
			corners = append(corners, i)
		}
	}
	return corners
}

// detectShape classifies polygons from corner counts. Triangle takes
// priority; a square additionally needs enough near-right corner angles,
// measured at each corner against its neighboring corners.
func detectShape(points []geom.Point) motion.Motion {
	corners := cornerIndices(points)

	if len(points) >= minTrianglePoints && (len(corners) == 3 || len(corners) == 4) {
		return motion.MotionTriangle
	}

	if len(points) >= minSquarePoints && (len(corners) == 4 || len(corners) == 5) {
		rightAngles := 0
		for i := 1; i < len(corners)-1; i++ {
			angle := geom.Degrees(geom.VertexAngle(
				points[corners[i-1]],
				points[corners[i]],
				points[corners[i+1]],
			))
			if math.Abs(angle-90) <= rightAngleTol {
				rightAngles++
			}
		}
		if rightAngles >= minSquareRightTurns {
			return motion.MotionSquare
		}
	}

	return motion.MotionNone
}

// detectZigzag counts sign changes of the horizontal velocity component,
// skipping zero steps so a pause does not reset the direction.
func detectZigzag(velocities []geom.Point) motion.Motion {
	if len(velocities) < minZigzagVelocity {
		return motion.MotionNone
	}

	changes := 0
	lastSign := 0
	for _, v := range velocities {
		s := sign(v.X)
		if s == 0 {
			continue
		}
		if lastSign != 0 && s != lastSign {
			changes++
		}
		lastSign = s
	}

	if changes >= minZigzagChanges {
		return motion.MotionZigzag
	}
	return motion.MotionNone
}

// detectWave counts reversals of the vertical travel direction along the
// trail itself.
func detectWave(points []geom.Point) motion.Motion {
	if len(points) < minWavePoints {
		return motion.MotionNone
	}

	reversals := 0
	lastSign := 0
	for i := 1; i < len(points); i++ {
		s := sign(points[i].Y - points[i-1].Y)
		if s == 0 {
			continue
		}
		if lastSign != 0 && s != lastSign {
			reversals++
		}
		lastSign = s
	}

	if reversals >= minWaveReversals {
		return motion.MotionWave
	}
	return motion.MotionNone
}

// detectScoop looks for a dip (or rise) of more than scoopDepth between
// the start and the trail's vertical extreme, ending back on the start's
// other side.
func detectScoop(points []geom.Point) motion.Motion {
	if len(points) < minScoopPoints {
		return motion.MotionNone
	}

	start := points[0]
	end := points[len(points)-1]

	minY, maxY := start.Y, start.Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	if start.Y-minY > scoopDepth && end.Y < start.Y {
		return motion.MotionScoopUp
	}
	if maxY-start.Y > scoopDepth && end.Y > start.Y {
		return motion.MotionScoopDown
	}
	return motion.MotionNone
}

// detectSpiral checks whether the distance from the centroid grows (or
// shrinks) monotonically across most of the trail.
func detectSpiral(points []geom.Point) motion.Motion {
	if len(points) < minSpiralPoints {
		return motion.MotionNone
	}

	center := geom.Centroid(points)
	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = p.DistanceTo(center)
	}

	increasing, decreasing := 0, 0
	for i := 1; i < len(distances); i++ {
		if distances[i] > distances[i-1] {
			increasing++
		} else if distances[i] < distances[i-1] {
			decreasing++
		}
	}

	steps := float64(len(distances) - 1)
	if float64(increasing) > spiralMonotoneRatio*steps || float64(decreasing) > spiralMonotoneRatio*steps {
		return motion.MotionSpiral
	}
	return motion.MotionNone
}

// overallDirection buckets the displacement from the first to the last
// trail point.
func overallDirection(points []geom.Point, minMovement float64) motion.Motion {
	if len(points) < 2 {
		return motion.MotionNone
	}
	return motion.ClassifyDirection(points[len(points)-1].Sub(points[0]), minMovement)
}

// sign returns -1, 0 or 1 for v.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
