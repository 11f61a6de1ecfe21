package trace

import (
	"errors"
	"io"

	"github.com/ayusman/kathak/internal/engine"
	"github.com/ayusman/kathak/internal/geom"
)

// Play replays a recorded trace through the engine, delivering events in
// recorded order on the calling goroutine. Recorded timing offsets are
// ignored; classification depends only on positions, not wall time.
// Returns the number of events delivered.
func Play(r io.Reader, eng *engine.Engine) (int, error) {
	dec := NewDecoder(r)
	delivered := 0

	for {
		ev, err := dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return delivered, nil
			}
			return delivered, err
		}

		switch ev.Kind {
		case KindMove:
			eng.PointerMoved(geom.Point{X: ev.X, Y: ev.Y})
		case KindButton:
			eng.PointerButton(ev.Button, ev.Pressed)
		}
		delivered++
	}
}
