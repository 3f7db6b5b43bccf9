package host

import (
	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/pkg/affine"
)

// Message is a touch event as sent by the client.
type Message struct {
	// Kind is one of "contact-begin", "second-contact-begin", "move"
	// or "contact-end".
	Kind string `json:"kind"`
	// Points are x, y pairs for up to two contacts.
	Points [][2]float64 `json:"points,omitempty"`
	// Remaining is the number of contacts still down after "contact-end".
	Remaining int `json:"remaining,omitempty"`
}

// Reply is sent back for every message.
type Reply struct {
	Session string `json:"session"`
	// Seq counts the messages received in this session, starting at 1.
	Seq  int    `json:"seq"`
	Mode string `json:"mode"`
	// Matrix holds the upper two rows of the transform:
	// [a, b, c, d, e, f] with x' = a*x + b*y + c and y' = d*x + e*y + f.
	Matrix [6]float64 `json:"matrix"`
	Error  string     `json:"error,omitempty"`
}

// Event converts the message to a multitouch.Event.
func (m Message) Event() (multitouch.Event, error) {
	kind, err := multitouch.ParseEventKind(m.Kind)
	if err != nil {
		return multitouch.Event{}, err
	}

	e := multitouch.Event{
		Kind:      kind,
		Remaining: m.Remaining,
	}
	for _, p := range m.Points {
		e.Points = append(e.Points, multitouch.Pt(p[0], p[1]))
	}

	return e, e.Validate()
}

// NewMessage creates a message from an event.
func NewMessage(e multitouch.Event) Message {
	m := Message{
		Kind:      e.Kind.String(),
		Remaining: e.Remaining,
	}
	for _, p := range e.Points {
		m.Points = append(m.Points, [2]float64{p.X, p.Y})
	}
	return m
}

// Transform returns the reply's matrix as an affine.Matrix.
func (r Reply) Transform() affine.Matrix {
	return affine.FromAff3(r.Matrix)
}
