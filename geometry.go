package multitouch

import (
	"fmt"
	"math"
)

// Point is a contact position in view coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// AngleDegrees returns the direction of the vector b->a in degrees,
// in the range -180..180.
//
// For a == b the angle is 0.
func AngleDegrees(a, b Point) float64 {
	radians := math.Atan2(a.Y-b.Y, a.X-b.X)
	return radians * 180 / math.Pi
}

// angleDelta is the absolute difference between two angles.
// With unwrap set, the difference is taken the short way around the circle.
func angleDelta(a, b float64, unwrap bool) float64 {
	d := a - b
	if unwrap {
		d = wrapDegrees(d)
	}
	return math.Abs(d)
}

// wrapDegrees folds an angle into (-180, 180].
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
