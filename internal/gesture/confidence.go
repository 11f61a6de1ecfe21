package gesture

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ayusman/kathak/internal/geom"
	"github.com/ayusman/kathak/internal/motion"
)

// Confidence weights.
const (
	baseConfidence   = 0.5
	lengthBonus      = 0.2
	longTrailPoints  = 10
	smoothnessWeight = 0.3
	varianceScale    = 1000.0
)

// Confidence scores a classification in [0, 1]: a 0.5 base, a bonus for
// trails longer than longTrailPoints, and up to smoothnessWeight for steady
// velocity. The gesture kind is accepted so kinds can be weighted
// differently later; today every kind scores the same way.
func Confidence(kind motion.Motion, points, velocities []geom.Point) float64 {
	_ = kind

	score := baseConfidence
	if len(points) > longTrailPoints {
		score += lengthBonus
	}
	score += smoothnessWeight * smoothness(velocities)

	return clamp(score, 0, 1)
}

// smoothness maps velocity variance to [0, 1]: 1 for perfectly even
// movement, falling to 0 as the population variance of the velocity
// vectors about their mean reaches varianceScale. An empty history scores 0.
func smoothness(velocities []geom.Point) float64 {
	if len(velocities) == 0 {
		return 0
	}

	xs := make([]float64, len(velocities))
	ys := make([]float64, len(velocities))
	for i, v := range velocities {
		xs[i] = v.X
		ys[i] = v.Y
	}

	variance := stat.PopVariance(xs, nil) + stat.PopVariance(ys, nil)
	return clamp(1-variance/varianceScale, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
