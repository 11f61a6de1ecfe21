// Package trail captures a pointer trail as a bounded sequence of accepted
// positions plus a bounded history of per-step velocities. The buffer is the
// noise-rejection stage of the recognition pipeline: samples that move less
// than the configured threshold are dropped before any classifier sees them.
package trail

import "github.com/ayusman/kathak/internal/geom"

// Buffer size constants.
const (
	// DefaultMaxLength is the default cap on stored trail positions.
	DefaultMaxLength = 100
	// VelocityHistorySize is the cap on stored per-step velocities.
	VelocityHistorySize = 20
)

// Buffer holds the positions and per-step velocities of the trail being
// drawn. It is owned by a single goroutine (the host's event loop) and is
// not safe for concurrent use.
type Buffer struct {
	points     []geom.Point
	velocities []geom.Point
	last       geom.Point
}

// NewBuffer creates an empty trail buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		points:     make([]geom.Point, 0, DefaultMaxLength),
		velocities: make([]geom.Point, 0, VelocityHistorySize),
	}
}

// Begin clears the buffer and records the pointer position at the moment
// tracking started. The recorded position is not itself part of the trail;
// the first accepted sample always passes the movement filter.
func (b *Buffer) Begin(at geom.Point) {
	b.Clear()
	b.last = at
}

// Accept offers a pointer position to the trail. The position is accepted
// if the trail is empty or the distance from the last accepted position is
// at least minMovement; anything closer is dropped as jitter. On acceptance
// the position is appended (evicting the oldest once the trail exceeds
// maxLength) and, if the trail already had a point, the displacement from
// the previous position is appended to the velocity history (evicting its
// oldest past VelocityHistorySize). Returns whether the sample was kept.
//
// minMovement and maxLength come from live configuration and are read on
// every call; changes apply to the next sample. A maxLength <= 0 falls back
// to DefaultMaxLength.
func (b *Buffer) Accept(p geom.Point, minMovement float64, maxLength int) bool {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	if len(b.points) > 0 && p.DistanceTo(b.last) < minMovement {
		return false
	}

	hadPoint := len(b.points) > 0

	b.points = append(b.points, p)
	if len(b.points) > maxLength {
		// Shift left by one, dropping the oldest position.
		copy(b.points, b.points[1:])
		b.points = b.points[:len(b.points)-1]
	}

	if hadPoint {
		b.velocities = append(b.velocities, p.Sub(b.last))
		if len(b.velocities) > VelocityHistorySize {
			copy(b.velocities, b.velocities[1:])
			b.velocities = b.velocities[:len(b.velocities)-1]
		}
	}

	b.last = p
	return true
}

// Clear empties the trail and velocity history without ending the session.
func (b *Buffer) Clear() {
	b.points = b.points[:0]
	b.velocities = b.velocities[:0]
}

// Len returns the number of stored trail positions.
func (b *Buffer) Len() int {
	return len(b.points)
}

// VelocityLen returns the number of stored velocity entries.
func (b *Buffer) VelocityLen() int {
	return len(b.velocities)
}

// Snapshot returns an independent copy of the trail positions. Callers may
// hold or mutate the returned slice without observing later buffer changes.
func (b *Buffer) Snapshot() []geom.Point {
	out := make([]geom.Point, len(b.points))
	copy(out, b.points)
	return out
}

// Velocities returns an independent copy of the velocity history.
func (b *Buffer) Velocities() []geom.Point {
	out := make([]geom.Point, len(b.velocities))
	copy(out, b.velocities)
	return out
}

// AverageVelocity returns the mean of the most recent n velocity entries,
// or fewer if the history is shorter. Returns the zero vector when the
// history is empty.
func (b *Buffer) AverageVelocity(n int) geom.Point {
	if n <= 0 || len(b.velocities) == 0 {
		return geom.Point{}
	}
	if n > len(b.velocities) {
		n = len(b.velocities)
	}

	var sum geom.Point
	for _, v := range b.velocities[len(b.velocities)-n:] {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(n))
}
