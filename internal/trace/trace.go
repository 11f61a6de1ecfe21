// Package trace defines a line-oriented JSON format for recorded pointer
// events and the plumbing to replay a recording through the recognition
// engine. A trace file holds one event per line, in delivery order, which
// keeps recordings diffable and trivially appendable.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Kind discriminates pointer event records.
type Kind string

const (
	// KindMove is a pointer position update.
	KindMove Kind = "move"
	// KindButton is a pointer button press or release.
	KindButton Kind = "button"
)

// ErrUnknownKind is returned when a trace line carries an unrecognized
// event kind.
var ErrUnknownKind = errors.New("unknown event kind")

// Event is one recorded pointer event.
type Event struct {
	Kind     Kind    `json:"kind"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Button   int     `json:"button,omitempty"`
	Pressed  bool    `json:"pressed,omitempty"`
	OffsetMs int64   `json:"t,omitempty"` // milliseconds since trace start
}

// Decoder reads trace events from a stream, one JSON object per line.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// Next returns the next event in the trace. It returns io.EOF when the
// stream is exhausted. Blank lines are skipped.
func (d *Decoder) Next() (Event, error) {
	for d.sc.Scan() {
		d.line++
		raw := d.sc.Bytes()
		if len(raw) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			return Event{}, fmt.Errorf("trace line %d: %w", d.line, err)
		}

		switch ev.Kind {
		case KindMove, KindButton:
			return ev, nil
		default:
			return Event{}, fmt.Errorf("trace line %d: %w: %q", d.line, ErrUnknownKind, ev.Kind)
		}
	}

	if err := d.sc.Err(); err != nil {
		return Event{}, err
	}
	return Event{}, io.EOF
}

// Recorder writes trace events to a stream, stamping each with its offset
// from the first recorded event.
type Recorder struct {
	enc     *json.Encoder
	start   time.Time
	started bool
	now     func() time.Time
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

// Move records a pointer position update.
func (r *Recorder) Move(x, y float64) error {
	return r.write(Event{Kind: KindMove, X: x, Y: y})
}

// Button records a pointer button transition.
func (r *Recorder) Button(button int, pressed bool) error {
	return r.write(Event{Kind: KindButton, Button: button, Pressed: pressed})
}

func (r *Recorder) write(ev Event) error {
	now := r.now()
	if !r.started {
		r.start = now
		r.started = true
	}
	ev.OffsetMs = now.Sub(r.start).Milliseconds()
	return r.enc.Encode(ev)
}
