package multitouch

import (
	"fmt"
	"math"
	"strings"

	"github.com/akeil/multitouch/internal/errors"
	"github.com/akeil/multitouch/pkg/affine"
)

// EventKind tells what happened to the contacts.
type EventKind uint32

const (
	// ContactBegin is the first pointer going down.
	ContactBegin EventKind = iota
	// SecondContactBegin is an additional pointer going down.
	SecondContactBegin
	// Move is a position update for the active pointers.
	Move
	// ContactEnd is any pointer going up.
	ContactEnd
)

var kindNames = []string{
	"contact-begin",
	"second-contact-begin",
	"move",
	"contact-end",
}

func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint32(k))
}

// Valid tells whether k is one of the known event kinds.
func (k EventKind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseEventKind converts a name as returned by EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	s = strings.ToLower(s)
	for i, name := range kindNames {
		if name == s {
			return EventKind(i), nil
		}
	}
	return 0, errors.NewValidationError("unknown event kind %q", s)
}

// Event is a snapshot of the contact positions.
type Event struct {
	Kind EventKind
	// Points holds the positions of the first two contacts.
	// Required for SecondContactBegin and Move.
	Points []Point
	// Remaining is the number of contacts still down after ContactEnd.
	Remaining int
}

// Validate checks that the event carries what its kind requires.
func (e Event) Validate() error {
	if !e.Kind.Valid() {
		return errors.NewValidationError("invalid event kind %d", uint32(e.Kind))
	}

	switch e.Kind {
	case SecondContactBegin, Move:
		if len(e.Points) < 2 {
			return errors.NewValidationError("%v requires two points, got %d", e.Kind, len(e.Points))
		}
	case ContactEnd:
		if e.Remaining < 0 {
			return errors.NewValidationError("remaining contacts must not be negative, got %d", e.Remaining)
		}
	}

	for i, p := range e.Points {
		if !finite(p.X) || !finite(p.Y) {
			return errors.NewValidationError("point %d is not finite: %v", i, p)
		}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Handle dispatches a single event and returns the current transform.
//
// Malformed events are rejected with a validation error and do not change
// the state.
func (t *Transformer) Handle(e Event) (affine.Matrix, error) {
	err := e.Validate()
	if err != nil {
		return t.Transform(), err
	}

	switch e.Kind {
	case ContactBegin:
		t.OnContactBegin()
	case SecondContactBegin:
		t.OnSecondContactBegin(e.Points[0], e.Points[1])
	case Move:
		t.OnMove(e.Points[0], e.Points[1])
	case ContactEnd:
		t.OnContactEnd(e.Remaining)
	}

	return t.Transform(), nil
}
