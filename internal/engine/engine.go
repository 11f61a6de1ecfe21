// Package engine ties trail capture, motion classification and gesture
// recognition together behind a single facade driven by host pointer
// events. The engine is synchronous and single-owner: every event is
// processed, and every subscriber notified, in the same call that
// delivered the input. It is not safe for concurrent use; the host's
// event loop owns it.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/kathak/internal/geom"
	"github.com/ayusman/kathak/internal/gesture"
	"github.com/ayusman/kathak/internal/motion"
	"github.com/ayusman/kathak/internal/trail"
)

// PrimaryButton is the pointer button that starts and ends tracking.
const PrimaryButton = 0

// smoothingWindow is how many recent velocity samples are averaged before
// continuous direction classification. Classification stays silent until
// the history holds at least this many entries.
const smoothingWindow = 3

// Config holds the engine's tunable parameters. It may be mutated at any
// time through SetConfig; classifiers read the live values on every
// invocation, so a change applies from the next sample on. Values are
// accepted without range validation.
type Config struct {
	// TrackingEnabled gates all pointer-event processing. Disabling it
	// mid-session freezes the session rather than ending it.
	TrackingEnabled bool
	// MinMovementThreshold is the minimum distance between accepted
	// samples, and the minimum velocity magnitude that classifies as a
	// direction. Zero or negative accepts every sample.
	MinMovementThreshold float64
	// GestureTimeout is reserved; no detector consults it yet.
	GestureTimeout time.Duration
	// CircleSegmentsRequired is the minimum trail length for the circle
	// detector.
	CircleSegmentsRequired int
	// SmoothingFactor is reserved; no detector consults it yet.
	SmoothingFactor float64
	// MaxTrailLength caps the stored trail; oldest positions are evicted.
	MaxTrailLength int
	// MinGesturePoints is the minimum trail length for any gesture to be
	// emitted at session end.
	MinGesturePoints int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		TrackingEnabled:        true,
		MinMovementThreshold:   5.0,
		GestureTimeout:         2 * time.Second,
		CircleSegmentsRequired: 8,
		SmoothingFactor:        0.5,
		MaxTrailLength:         trail.DefaultMaxLength,
		MinGesturePoints:       5,
	}
}

// Session identifies one tracking interval, from start to stop.
type Session struct {
	ID        string
	StartedAt time.Time
}

// MotionEvent is the continuous classification emitted for an accepted
// pointer sample while a trail is being drawn.
type MotionEvent struct {
	Session     string
	Motion      motion.Motion
	Velocity    geom.Point
	Position    geom.Point
	TrailLength int
}

// GestureResult is the single classification emitted when a trail ends.
type GestureResult struct {
	Session    string
	Gesture    motion.Motion
	Confidence float64
	Duration   time.Duration
}

// Engine is the recognition facade. Construct one per pointer stream.
type Engine struct {
	cfg     Config
	buf     *trail.Buffer
	session *Session
	pointer geom.Point

	motionHandlers  []func(MotionEvent)
	gestureHandlers []func(GestureResult)
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		buf: trail.NewBuffer(),
	}
}

// OnMotion registers a handler for continuous motion classifications.
// Handlers run synchronously, in registration order, inside the pointer
// event that produced the classification.
func (e *Engine) OnMotion(fn func(MotionEvent)) {
	if fn == nil {
		return
	}
	e.motionHandlers = append(e.motionHandlers, fn)
}

// OnGesture registers a handler for completed-gesture classifications.
// Same delivery semantics as OnMotion.
func (e *Engine) OnGesture(fn func(GestureResult)) {
	if fn == nil {
		return
	}
	e.gestureHandlers = append(e.gestureHandlers, fn)
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig replaces the configuration. Takes effect from the next sample.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
}

// SetSensitivity sets the minimum movement threshold.
func (e *Engine) SetSensitivity(threshold float64) {
	e.cfg.MinMovementThreshold = threshold
}

// SetTrackingEnabled enables or disables pointer-event processing. An
// in-progress session is left as-is; it resumes if re-enabled.
func (e *Engine) SetTrackingEnabled(enabled bool) {
	e.cfg.TrackingEnabled = enabled
}

// IsTracking reports whether a session is in progress.
func (e *Engine) IsTracking() bool {
	return e.session != nil
}

// CurrentSession returns the session in progress, or nil.
func (e *Engine) CurrentSession() *Session {
	if e.session == nil {
		return nil
	}
	s := *e.session
	return &s
}

// CurrentTrail returns an independent copy of the trail accepted so far.
func (e *Engine) CurrentTrail() []geom.Point {
	return e.buf.Snapshot()
}

// ClearTrail empties the trail and velocity history. The session, if any,
// stays in progress.
func (e *Engine) ClearTrail() {
	e.buf.Clear()
}

// Reset clears all buffers and abandons any in-progress session without
// emitting a gesture.
func (e *Engine) Reset() {
	e.buf.Clear()
	e.session = nil
}

// PointerMoved feeds a pointer position to the engine. While a session is
// in progress the position runs through movement-threshold filtering; once
// the velocity history is warm an accepted sample emits a MotionEvent,
// classified from the smoothed recent velocity.
func (e *Engine) PointerMoved(pos geom.Point) {
	if !e.cfg.TrackingEnabled {
		return
	}

	e.pointer = pos

	if e.session == nil {
		return
	}

	if !e.buf.Accept(pos, e.cfg.MinMovementThreshold, e.cfg.MaxTrailLength) {
		return
	}

	if e.buf.VelocityLen() < smoothingWindow {
		return
	}

	velocity := e.buf.AverageVelocity(smoothingWindow)
	ev := MotionEvent{
		Session:     e.session.ID,
		Motion:      motion.ClassifyDirection(velocity, e.cfg.MinMovementThreshold),
		Velocity:    velocity,
		Position:    pos,
		TrailLength: e.buf.Len(),
	}
	for _, fn := range e.motionHandlers {
		fn(ev)
	}
}

// PointerButton feeds a pointer button transition to the engine. The
// primary button pressed starts a session; released, ends it. Other
// buttons are ignored.
func (e *Engine) PointerButton(button int, pressed bool) {
	if !e.cfg.TrackingEnabled {
		return
	}
	if button != PrimaryButton {
		return
	}

	if pressed {
		e.StartTracking()
	} else {
		e.StopTracking()
	}
}

// StartTracking begins a session programmatically. A no-op if a session is
// already in progress.
func (e *Engine) StartTracking() {
	if e.session != nil {
		return
	}

	e.buf.Begin(e.pointer)
	e.session = &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// StopTracking ends the session in progress. If the trail collected at
// least MinGesturePoints positions, the recognizer cascade runs and a
// single GestureResult is emitted; shorter trails emit nothing. Buffers
// are cleared either way.
func (e *Engine) StopTracking() {
	if e.session == nil {
		return
	}

	sess := *e.session

	if e.buf.Len() >= e.cfg.MinGesturePoints {
		points := e.buf.Snapshot()
		velocities := e.buf.Velocities()

		kind := gesture.Recognize(points, velocities, e.cfg.CircleSegmentsRequired, e.cfg.MinMovementThreshold)
		result := GestureResult{
			Session:    sess.ID,
			Gesture:    kind,
			Confidence: gesture.Confidence(kind, points, velocities),
			Duration:   time.Since(sess.StartedAt),
		}
		for _, fn := range e.gestureHandlers {
			fn(result)
		}
	}

	e.buf.Clear()
	e.session = nil
}
