package trace

import (
	"math"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/errors"
)

// Validate checks the version and all events for valid data.
// Returns an error if invalid data is found, nil if everything is fine.
//
// Besides the shape of each event, the order is checked: a move or a
// second contact needs at least one contact down.
func (t *Trace) Validate() error {
	if t.Version != V1 {
		return errors.NewValidationError("invalid version: %v", t.Version)
	}

	down := 0
	for i, e := range t.Events {
		err := validateEvent(e)
		if err != nil {
			return errors.Wrap(err, "event %d", i)
		}

		switch e.Kind {
		case multitouch.ContactBegin:
			down = 1
		case multitouch.SecondContactBegin:
			if down < 1 {
				return errors.NewValidationError("event %d: second contact without first contact", i)
			}
			down = 2
		case multitouch.Move:
			if down < 1 {
				return errors.NewValidationError("event %d: move without contact", i)
			}
		case multitouch.ContactEnd:
			down = e.Remaining
		}
	}

	return nil
}

func validateEvent(e multitouch.Event) error {
	if len(e.Points) > maxPoints {
		return errors.NewValidationError("too many points: %d", len(e.Points))
	}

	for _, p := range e.Points {
		if math.IsInf(float64(float32(p.X)), 0) || math.IsInf(float64(float32(p.Y)), 0) {
			return errors.NewValidationError("point %v exceeds float32 range", p)
		}
	}

	return e.Validate()
}
