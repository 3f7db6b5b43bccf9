package multitouch

import (
	"github.com/akeil/multitouch/internal/errors"
)

// Thresholds control how a two finger gesture is classified.
//
// Angles are given in degrees, distances in view coordinates.
type Thresholds struct {
	// RotateAngle is the angle change that selects Rotate.
	RotateAngle float64 `toml:"rotate_angle"`
	// SteadyAngle is the largest angle change allowed for Zoom or Drag.
	SteadyAngle float64 `toml:"steady_angle"`
	// ZoomDistance is the change in finger spacing that selects Zoom.
	ZoomDistance float64 `toml:"zoom_distance"`
	// DragDistance is the largest change in finger spacing allowed for Drag.
	DragDistance float64 `toml:"drag_distance"`
	// DragMidpoint is how far the midpoint must move to select Drag.
	DragMidpoint float64 `toml:"drag_midpoint"`
	// UnwrapAngles compares angles the short way around the circle.
	// Off by default: a finger pair crossing the +-180 degree line
	// registers as a large angle change.
	UnwrapAngles bool `toml:"unwrap_angles"`
}

// DefaultThresholds returns the standard classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RotateAngle:  8.0,
		SteadyAngle:  5.0,
		ZoomDistance: 100.0,
		DragDistance: 80.0,
		DragMidpoint: 50.0,
	}
}

// Validate checks the thresholds for values that cannot classify anything.
func (t Thresholds) Validate() error {
	values := []struct {
		name string
		v    float64
	}{
		{"rotate_angle", t.RotateAngle},
		{"steady_angle", t.SteadyAngle},
		{"zoom_distance", t.ZoomDistance},
		{"drag_distance", t.DragDistance},
		{"drag_midpoint", t.DragMidpoint},
	}
	for _, x := range values {
		if x.v < 0 {
			return errors.NewValidationError("threshold %v must not be negative, got %v", x.name, x.v)
		}
	}

	if t.SteadyAngle > t.RotateAngle {
		return errors.NewValidationError("steady_angle (%v) must not exceed rotate_angle (%v)", t.SteadyAngle, t.RotateAngle)
	}

	return nil
}
