package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotation(t *testing.T) {
	x := 1
	y := 2
	rad := 90 * math.Pi / 180

	rot := Rotation(rad)
	tx, ty := rot.Apply(float64(x), float64(y))

	if math.Round(tx) != -2 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 1 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}

	// translating around the center should result in the same point
	t0 := Translation(float64(-x), float64(-y))
	tx, ty = t0.Apply(float64(x), float64(y))
	tx, ty = rot.Apply(tx, ty)

	if math.Round(tx) != 0 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 0 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}
}

func TestPostTranslate(t *testing.T) {
	m := Scaling(2, 2).PostTranslate(10, -5)

	x, y := m.Apply(1, 1)
	assert.InDelta(t, 12.0, x, 1e-9)
	assert.InDelta(t, -3.0, y, 1e-9)
}

func TestPostScale(t *testing.T) {
	m := Identity().PostScale(2, 2, 50, 50)

	// the pivot stays in place
	x, y := m.Apply(50, 50)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)

	x, y = m.Apply(60, 50)
	assert.InDelta(t, 70.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
	assert.InDelta(t, 2.0, m.Scale(), 1e-9)
}

func TestPostRotate(t *testing.T) {
	m := Identity().PostRotate(90, 50, 0)

	x, y := m.Apply(50, 0)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y = m.Apply(100, 0)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
	assert.InDelta(t, 90.0, m.RotationDegrees(), 1e-9)

	// a full turn in two steps is the identity
	m = m.PostRotate(270, 50, 0)
	assert.True(t, m.IsIdentity(), "expected identity, got %v", m)
}

func TestPostOrder(t *testing.T) {
	// translate first, then scale around the origin
	m := Identity().PostTranslate(1, 0).PostScale(3, 3, 0, 0)
	x, y := m.Apply(0, 0)
	assert.InDelta(t, 3.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestCopyIsIndependent(t *testing.T) {
	m := Identity()
	saved := m
	m = m.PostTranslate(5, 5)

	if !saved.IsIdentity() {
		t.Errorf("saved matrix changed: %v", saved)
	}
	if m.IsIdentity() {
		t.Errorf("transformed matrix should not be identity")
	}
}

func TestInvert(t *testing.T) {
	m := Identity().PostScale(2, 2, 10, 10).PostRotate(30, 5, 5).PostTranslate(3, 4)
	inv, ok := m.Invert()
	if !ok {
		t.Fatalf("matrix should be invertible")
	}
	assert.True(t, inv.Multiply(m).Equal(Identity(), 1e-9))

	_, ok = Scaling(0, 0).Invert()
	if ok {
		t.Errorf("zero scale should not be invertible")
	}
}

func TestIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Errorf("identity should be finite")
	}
	m := Identity().PostScale(math.Inf(1), 1, 0, 0)
	if m.IsFinite() {
		t.Errorf("infinite scale should not be finite")
	}
}

func TestAff3(t *testing.T) {
	m := Identity().PostRotate(45, 1, 2).PostTranslate(7, 8)
	back := FromAff3(m.Aff3())
	assert.True(t, back.Equal(m, 0))
}
