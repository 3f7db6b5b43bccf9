package multitouch

import (
	"github.com/akeil/multitouch/internal/logging"
	"github.com/akeil/multitouch/pkg/affine"
)

// Transformer turns a sequence of touch events into an affine transform.
//
// It owns a GestureState and applies the state operations in place.
// A Transformer is not safe for concurrent use; events must be delivered
// from one goroutine (or under one lock) in the order they occurred.
type Transformer struct {
	th    Thresholds
	state GestureState
}

// NewTransformer creates a Transformer with an identity transform.
func NewTransformer(th Thresholds) *Transformer {
	return &Transformer{
		th:    th,
		state: NewGestureState(),
	}
}

// OnContactBegin is called when the first pointer touches.
func (t *Transformer) OnContactBegin() {
	t.state = t.state.ContactBegin()
}

// OnSecondContactBegin is called when a second pointer touches while
// the first one is still down.
func (t *Transformer) OnSecondContactBegin(p0, p1 Point) {
	if t.state.InGesture() {
		logging.Info("Ignore additional contact at %v, %v: gesture in progress", p0, p1)
		return
	}
	t.state = t.state.SecondContactBegin(p0, p1)
	logging.Debug("Gesture started at %v, distance %.1f, angle %.1f",
		t.state.OriginMidpoint, t.state.OriginDistance, t.state.OriginAngle)
}

// OnMove updates the transform from the current positions of both
// contacts and returns the result.
//
// Without an active gesture, the transform is returned unchanged.
func (t *Transformer) OnMove(p0, p1 Point) affine.Matrix {
	if !t.state.InGesture() {
		logging.Debug("Ignore move without gesture")
		return t.state.Transform
	}

	before := t.state.Mode
	t.state = t.state.Move(t.th, p0, p1)
	if before == None && t.state.Mode != None {
		logging.Debug("Gesture classified as %v", t.state.Mode)
	}

	return t.state.Transform
}

// OnContactEnd is called when a pointer lifts.
// remaining is the number of pointers still down.
func (t *Transformer) OnContactEnd(remaining int) {
	if t.state.InGesture() && remaining < 2 {
		logging.Debug("Gesture %v ended", t.state.Mode)
	}
	t.state = t.state.ContactEnd(remaining)
}

// Transform returns the current transform.
func (t *Transformer) Transform() affine.Matrix {
	return t.state.Transform
}

// Mode returns the classification of the current gesture.
func (t *Transformer) Mode() Mode {
	return t.state.Mode
}

// State returns a copy of the gesture state.
func (t *Transformer) State() GestureState {
	return t.state
}

// Thresholds returns the classification thresholds.
func (t *Transformer) Thresholds() Thresholds {
	return t.th
}

// Reset drops any gesture in progress and restores the identity transform.
func (t *Transformer) Reset() {
	t.state = NewGestureState()
}
