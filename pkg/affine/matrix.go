// Package affine implements 2D affine transforms as 3x3 matrices.
//
// A Matrix is a value; copying it (assignment) saves the transform.
// The Post* methods append an operation after the existing transform,
// i.e. for a point p the result of m.PostTranslate(dx, dy) maps p to
// m(p) + (dx, dy).
package affine

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a row-major 3x3 affine matrix.
//
//  a  b  c
//  d  e  f
//  0  0  1
//
// For a point (x, y) the result is (a*x + b*y + c, d*x + e*y + f).
type Matrix [9]float64

const epsilon = 1e-9

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation Matrix (CCW in a y-up system, clockwise on screen).
// The angle is given in radians.
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
func Rotation(angle float64) Matrix {
	m := Identity()
	sin, cos := math.Sincos(angle)
	m[0] = cos
	m[1] = sin * -1

	m[3] = sin
	m[4] = cos

	return m
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
func Scaling(sx, sy float64) Matrix {
	m := Identity()

	m[0] = sx
	m[4] = sy

	return m
}

// Multiply combines two affine transforms and returns a*b.
// Applied to a point, b takes effect first.
func (a Matrix) Multiply(b Matrix) Matrix {
	var m Matrix

	m[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	m[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	m[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	m[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	m[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	m[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	m[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return m
}

// Apply transforms the given x,y point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}

// PostTranslate returns m followed by a translation of dx, dy.
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	return Translation(dx, dy).Multiply(m)
}

// PostScale returns m followed by a scale of sx, sy around the pivot px, py.
func (m Matrix) PostScale(sx, sy, px, py float64) Matrix {
	return about(Scaling(sx, sy), px, py).Multiply(m)
}

// PostRotate returns m followed by a rotation around the pivot px, py.
// The angle is given in degrees.
func (m Matrix) PostRotate(degrees, px, py float64) Matrix {
	return about(Rotation(degrees*math.Pi/180), px, py).Multiply(m)
}

// about moves the origin of op to px, py: Translate - Op - Translate.
func about(op Matrix, px, py float64) Matrix {
	t0 := Translation(-px, -py)
	t1 := Translation(px, py)
	return t1.Multiply(op).Multiply(t0)
}

// Determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m[0]*m[4] - m[1]*m[3]
}

// Invert returns the inverse transform.
// The second return value is false if m is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < epsilon {
		return Identity(), false
	}

	inv := Identity()
	inv[0] = m[4] / det
	inv[1] = -m[1] / det
	inv[3] = -m[3] / det
	inv[4] = m[0] / det
	inv[2] = -(inv[0]*m[2] + inv[1]*m[5])
	inv[5] = -(inv[3]*m[2] + inv[4]*m[5])

	return inv, true
}

// IsIdentity tells whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m.Equal(Identity(), epsilon)
}

// IsFinite reports whether all entries are finite numbers.
func (m Matrix) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Equal compares two matrices entry by entry with the given tolerance.
func (m Matrix) Equal(o Matrix, tolerance float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tolerance {
			return false
		}
	}
	return true
}

// Scale returns the scale factor along the x axis.
// For the uniform scales produced by gestures this is the overall scale.
func (m Matrix) Scale() float64 {
	return math.Hypot(m[0], m[3])
}

// RotationDegrees returns the rotation angle of the linear part in degrees.
func (m Matrix) RotationDegrees() float64 {
	return math.Atan2(m[3], m[0]) * 180 / math.Pi
}

// Aff3 returns the upper two rows in the layout used by golang.org/x/image.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// FromAff3 creates a Matrix from the six values of an f64.Aff3.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		0, 0, 1,
	}
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f; %.4f %.4f %.4f]", m[0], m[1], m[2], m[3], m[4], m[5])
}
