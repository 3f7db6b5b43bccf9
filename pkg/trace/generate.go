package trace

import (
	"math"

	"github.com/akeil/multitouch"
)

// Twist creates a gesture where two contacts at the given spacing turn
// around center by degrees.
func Twist(center multitouch.Point, spacing, degrees float64, steps int) *Trace {
	return gesture(steps, func(f float64) (multitouch.Point, multitouch.Point) {
		return pair(center, spacing, degrees*f)
	})
}

// Pinch creates a horizontal gesture where the spacing of the contacts
// changes from one value to another around a fixed center.
func Pinch(center multitouch.Point, from, to float64, steps int) *Trace {
	return gesture(steps, func(f float64) (multitouch.Point, multitouch.Point) {
		return pair(center, from+(to-from)*f, 0)
	})
}

// Pan creates a horizontal gesture with constant spacing where the
// midpoint of the contacts moves from one point to another.
func Pan(from, to multitouch.Point, spacing float64, steps int) *Trace {
	return gesture(steps, func(f float64) (multitouch.Point, multitouch.Point) {
		c := multitouch.Pt(from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f)
		return pair(c, spacing, 0)
	})
}

// Idle creates a gesture where the contacts wobble slightly without
// ever leaving the undecided zone.
func Idle(center multitouch.Point, spacing float64, steps int) *Trace {
	return gesture(steps, func(f float64) (multitouch.Point, multitouch.Point) {
		wobble := math.Sin(f * 2 * math.Pi)
		c := multitouch.Pt(center.X+5*wobble, center.Y)
		return pair(c, spacing+10*wobble, 2*wobble)
	})
}

// gesture builds the event sequence begin, second begin, moves, end, end.
// pos is called with the progress of the gesture, 0..1.
func gesture(steps int, pos func(f float64) (multitouch.Point, multitouch.Point)) *Trace {
	if steps < 1 {
		steps = 1
	}

	p0, p1 := pos(0)
	t := New(
		multitouch.Event{Kind: multitouch.ContactBegin, Points: []multitouch.Point{p0}},
		multitouch.Event{Kind: multitouch.SecondContactBegin, Points: []multitouch.Point{p0, p1}},
	)

	for i := 1; i <= steps; i++ {
		p0, p1 = pos(float64(i) / float64(steps))
		t.Append(multitouch.Event{Kind: multitouch.Move, Points: []multitouch.Point{p0, p1}})
	}

	t.Append(
		multitouch.Event{Kind: multitouch.ContactEnd, Remaining: 1},
		multitouch.Event{Kind: multitouch.ContactEnd, Remaining: 0},
	)
	return t
}

// pair places two contacts around c, the second one in the direction
// of the given angle (degrees).
func pair(c multitouch.Point, spacing, degrees float64) (multitouch.Point, multitouch.Point) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	dx := cos * spacing / 2
	dy := sin * spacing / 2
	return multitouch.Pt(c.X-dx, c.Y-dy), multitouch.Pt(c.X+dx, c.Y+dy)
}
