package multitouch

import (
	"math"
	"testing"
)

var pointPairs = [][2]Point{
	{Pt(0, 0), Pt(100, 0)},
	{Pt(-3, 7), Pt(12, -40)},
	{Pt(250.5, 10.25), Pt(0, 0)},
	{Pt(1e4, 1e4), Pt(-1e4, 3)},
}

func TestDistanceSymmetric(t *testing.T) {
	for _, p := range pointPairs {
		a, b := p[0], p[1]
		if Distance(a, b) != Distance(b, a) {
			t.Errorf("distance not symmetric for %v, %v", a, b)
		}
	}

	d := Distance(Pt(0, 0), Pt(3, 4))
	if d != 5 {
		t.Errorf("unexpected distance %v", d)
	}
}

func TestMidpointSymmetric(t *testing.T) {
	for _, p := range pointPairs {
		a, b := p[0], p[1]
		if Midpoint(a, b) != Midpoint(b, a) {
			t.Errorf("midpoint not symmetric for %v, %v", a, b)
		}
	}

	m := Midpoint(Pt(0, 0), Pt(100, 0))
	if m != Pt(50, 0) {
		t.Errorf("unexpected midpoint %v", m)
	}
}

func TestAngleDegrees(t *testing.T) {
	cases := []struct {
		a, b     Point
		expected float64
	}{
		{Pt(100, 0), Pt(0, 0), 0},
		{Pt(0, 100), Pt(0, 0), 90},
		{Pt(0, 0), Pt(100, 0), 180},
		{Pt(0, -100), Pt(0, 0), -90},
		{Pt(100, 150), Pt(0, 0), 56.3099},
	}
	for _, c := range cases {
		actual := AngleDegrees(c.a, c.b)
		if math.Abs(actual-c.expected) > 1e-4 {
			t.Errorf("angle %v -> %v: %v != %v", c.b, c.a, actual, c.expected)
		}
	}
}

func TestAngleDegreesReversed(t *testing.T) {
	// swapping the points turns the vector around
	for _, p := range pointPairs {
		a, b := p[0], p[1]
		d := math.Abs(wrapDegrees(AngleDegrees(a, b) - AngleDegrees(b, a)))
		if math.Abs(d-180) > 1e-9 {
			t.Errorf("reversed angle for %v, %v differs by %v", a, b, d)
		}
	}
}

func TestAngleDegreesSamePoint(t *testing.T) {
	a := AngleDegrees(Pt(5, 5), Pt(5, 5))
	if a != 0 {
		t.Errorf("angle for identical points should be 0, got %v", a)
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:      0,
		180:    180,
		-180:   180,
		190:    -170,
		-303.7: 56.3,
		720:    0,
	}
	for in, expected := range cases {
		actual := wrapDegrees(in)
		if math.Abs(actual-expected) > 1e-9 {
			t.Errorf("wrap %v: %v != %v", in, actual, expected)
		}
	}
}
