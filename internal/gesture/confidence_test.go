package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/kathak/internal/geom"
	"github.com/ayusman/kathak/internal/motion"
	"github.com/ayusman/kathak/testdata"
)

func TestConfidence_PerfectlySmoothLongTrail(t *testing.T) {
	// Uniform velocity, more than ten points: full marks.
	points := testdata.Line(geom.Point{}, geom.Point{X: 150, Y: 0}, 16)
	velocities := testdata.Velocities(points)

	got := Confidence(motion.MotionRight, points, velocities)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Confidence = %f, want 1.0", got)
	}
}

func TestConfidence_ShortJitteryTrail(t *testing.T) {
	// Four points with wildly varying velocity: no length bonus, no
	// smoothness contribution.
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 200, Y: 0},
		{X: 0, Y: 200},
		{X: 200, Y: 200},
	}
	velocities := testdata.Velocities(points)

	got := Confidence(motion.MotionNone, points, velocities)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Confidence = %f, want 0.5", got)
	}
}

func TestConfidence_LengthBonus(t *testing.T) {
	short := testdata.Line(geom.Point{}, geom.Point{X: 90, Y: 0}, 10)
	long := testdata.Line(geom.Point{}, geom.Point{X: 100, Y: 0}, 11)

	// Identical 10-unit steps; only the point count differs.
	cShort := Confidence(motion.MotionRight, short, testdata.Velocities(short))
	cLong := Confidence(motion.MotionRight, long, testdata.Velocities(long))

	if diff := cLong - cShort; math.Abs(diff-0.2) > 1e-9 {
		t.Errorf("length bonus = %f, want 0.2", diff)
	}
}

func TestConfidence_AlwaysInRange(t *testing.T) {
	trails := [][]geom.Point{
		nil,
		{{X: 1, Y: 1}},
		testdata.Line(geom.Point{}, geom.Point{X: 5000, Y: 0}, 3),
		testdata.Arc(0, 0, 400, 0, 300, 30),
		testdata.Zigzag(500, 100, 10),
	}

	for i, points := range trails {
		got := Confidence(motion.MotionNone, points, testdata.Velocities(points))
		if got < 0 || got > 1 {
			t.Errorf("trail %d: Confidence = %f, out of [0, 1]", i, got)
		}
	}
}

func TestConfidence_KindDoesNotAffectScore(t *testing.T) {
	points := testdata.Wave(20, 200, 2, 24)
	velocities := testdata.Velocities(points)

	a := Confidence(motion.MotionWave, points, velocities)
	b := Confidence(motion.MotionSquare, points, velocities)
	if a != b {
		t.Errorf("score differs by kind: %f vs %f", a, b)
	}
}
