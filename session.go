package multitouch

import (
	"github.com/akeil/multitouch/internal/errors"
	"github.com/akeil/multitouch/pkg/affine"
)

// Sink receives the transform after every event,
// e.g. to apply it to the visual being manipulated.
type Sink interface {
	Apply(m affine.Matrix) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(m affine.Matrix) error

// Apply calls f(m).
func (f SinkFunc) Apply(m affine.Matrix) error {
	return f(m)
}

// Session connects a Transformer to a Sink.
type Session struct {
	t    *Transformer
	sink Sink
}

// NewSession creates a session with a fresh Transformer.
// sink may be nil.
func NewSession(th Thresholds, sink Sink) *Session {
	return &Session{
		t:    NewTransformer(th),
		sink: sink,
	}
}

// Transformer returns the session's Transformer.
func (s *Session) Transformer() *Transformer {
	return s.t
}

// Handle dispatches the event and hands the resulting transform to the sink.
func (s *Session) Handle(e Event) error {
	m, err := s.t.Handle(e)
	if err != nil {
		return err
	}

	if s.sink == nil {
		return nil
	}
	return s.sink.Apply(m)
}

// Replay feeds all events in order and stops at the first error.
// The returned error names the index of the failing event.
func (s *Session) Replay(events []Event) error {
	for i, e := range events {
		err := s.Handle(e)
		if err != nil {
			return errors.Wrap(err, "event %d (%v)", i, e.Kind)
		}
	}
	return nil
}
