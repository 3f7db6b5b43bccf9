package multitouch

import (
	"math"

	"github.com/akeil/multitouch/pkg/affine"
)

// GestureState holds everything needed to interpret a two finger gesture.
//
// The state is a value: each operation returns the next state and leaves
// the receiver untouched.
type GestureState struct {
	// Mode is the classification of the current gesture.
	Mode Mode
	// Transform is the live transform.
	Transform affine.Matrix
	// Saved is the transform at the moment the second contact began.
	// Zoom and Drag are recomputed from it on every move.
	Saved affine.Matrix

	OriginMidpoint Point
	OriginDistance float64
	OriginAngle    float64
	PreviousAngle  float64

	// Active is the number of contacts currently down.
	Active int
}

// NewGestureState creates a state with an identity transform and no contacts.
func NewGestureState() GestureState {
	return GestureState{
		Transform: affine.Identity(),
		Saved:     affine.Identity(),
	}
}

// InGesture tells whether two contacts are down.
func (s GestureState) InGesture() bool {
	return s.Active >= 2
}

// ContactBegin registers the first contact.
func (s GestureState) ContactBegin() GestureState {
	if s.Active < 1 {
		s.Active = 1
	}
	return s
}

// SecondContactBegin starts a gesture. The current transform is saved and
// the origin values are taken from the two contact positions.
//
// If a gesture is already in progress, the state is returned unchanged.
func (s GestureState) SecondContactBegin(p0, p1 Point) GestureState {
	if s.InGesture() {
		return s
	}

	r := measure(p0, p1)
	s.Active = 2
	s.Saved = s.Transform
	s.OriginMidpoint = r.midpoint
	s.OriginDistance = r.distance
	s.OriginAngle = r.angle
	s.PreviousAngle = r.angle
	return s
}

// Move updates the transform from the current contact positions.
//
// If no mode was selected yet, the gesture is classified first.
// Without an active gesture this is a no-op.
func (s GestureState) Move(th Thresholds, p0, p1 Point) GestureState {
	if !s.InGesture() {
		return s
	}

	r := measure(p0, p1)
	if s.Mode == None {
		s.Mode = classify(th, s, r)
	}

	if h, ok := handlers[s.Mode]; ok {
		s = h(th, s, r)
	}
	return s
}

// ContactEnd ends the gesture if fewer than two contacts remain.
func (s GestureState) ContactEnd(remaining int) GestureState {
	if remaining < 0 {
		remaining = 0
	}
	if remaining < 2 {
		s.Mode = None
		s.Active = remaining
	}
	return s
}

// reading is the geometry of one two-contact snapshot.
type reading struct {
	midpoint Point
	distance float64
	angle    float64
}

// measure takes the angle from the first contact towards the second.
// A horizontal finger pair (second to the right) is at 0 degrees.
func measure(p0, p1 Point) reading {
	return reading{
		midpoint: Midpoint(p0, p1),
		distance: Distance(p0, p1),
		angle:    AngleDegrees(p1, p0),
	}
}

// classify selects the mode for an undecided gesture. The first match wins;
// readings that match nothing leave the gesture undecided. A gesture that
// started with both contacts on the same spot has no spacing to scale
// against and never becomes a zoom.
func classify(th Thresholds, s GestureState, r reading) Mode {
	dAngle := angleDelta(s.OriginAngle, r.angle, th.UnwrapAngles)
	dDist := math.Abs(r.distance - s.OriginDistance)

	switch {
	case dAngle >= th.RotateAngle:
		return Rotate
	case dAngle <= th.SteadyAngle && dDist > th.ZoomDistance && s.OriginDistance > 0:
		return Zoom
	case dAngle <= th.SteadyAngle && dDist <= th.DragDistance &&
		Distance(r.midpoint, s.OriginMidpoint) >= th.DragMidpoint:
		return Drag
	}
	return None
}

type handler func(th Thresholds, s GestureState, r reading) GestureState

var handlers = map[Mode]handler{
	Rotate: rotate,
	Zoom:   zoom,
	Drag:   drag,
}

// rotate is incremental: the angle change since the previous move is
// applied to the live transform, pivoting on the origin midpoint.
func rotate(th Thresholds, s GestureState, r reading) GestureState {
	delta := r.angle - s.PreviousAngle
	if th.UnwrapAngles {
		delta = wrapDegrees(delta)
	}
	s.PreviousAngle = r.angle
	s.Transform = s.Transform.PostRotate(delta, s.OriginMidpoint.X, s.OriginMidpoint.Y)
	return s
}

// zoom is absolute: the saved transform scaled by the spacing ratio,
// pivoting on the current midpoint.
func zoom(th Thresholds, s GestureState, r reading) GestureState {
	if s.OriginDistance == 0 {
		return s
	}
	scale := r.distance / s.OriginDistance
	s.Transform = s.Saved.PostScale(scale, scale, r.midpoint.X, r.midpoint.Y)
	return s
}

// drag is absolute: the saved transform moved by the midpoint shift.
func drag(th Thresholds, s GestureState, r reading) GestureState {
	dx := r.midpoint.X - s.OriginMidpoint.X
	dy := r.midpoint.Y - s.OriginMidpoint.Y
	s.Transform = s.Saved.PostTranslate(dx, dy)
	return s
}
