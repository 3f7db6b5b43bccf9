// Package render paints an image through a gesture transform.
//
// The rendering sinks stand in for the view that displays the image:
// they take the source image and the current affine transform and
// produce a PNG or a PDF of the viewport.
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/imaging"
	"github.com/akeil/multitouch/internal/logging"
	"github.com/akeil/multitouch/pkg/affine"
)

var (
	outlineColor = color.RGBA{200, 40, 40, 255}
	pivotColor   = color.RGBA{40, 40, 200, 255}
)

// Context holds the viewport parameters for rendering operations.
type Context struct {
	// Width and Height of the viewport in pixels (or points for PDF).
	Width  int
	Height int
	// Background fills the viewport outside the image.
	Background color.Color
	// Outline draws the transformed image bounds and center.
	Outline bool
}

// NewContext sets up a rendering context from the render config section.
func NewContext(cfg multitouch.RenderConfig) (*Context, error) {
	bg, err := cfg.Color()
	if err != nil {
		return nil, err
	}

	return &Context{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: bg,
		Outline:    cfg.Outline,
	}, nil
}

// DefaultContext returns a context for the default viewport.
func DefaultContext() *Context {
	c, err := NewContext(multitouch.DefaultConfig().Render)
	if err != nil {
		// the default config is always valid
		panic(err)
	}
	return c
}

// Source returns the image to transform: the given one scaled to fit the
// viewport, or a placeholder pattern if i is nil.
func (c *Context) Source(i image.Image) image.Image {
	if i == nil {
		logging.Debug("No source image, use placeholder")
		return imaging.Placeholder(c.Width/2, c.Height/2, 25)
	}
	return imaging.Fit(i, c.Width, c.Height)
}

// Format is an output format.
type Format int

const (
	PNG Format = iota
	PDF
)

// Render writes src transformed by m in the given format.
func (c *Context) Render(w io.Writer, src image.Image, m affine.Matrix, f Format) error {
	switch f {
	case PDF:
		return c.PDF(w, src, m)
	default:
		return c.PNG(w, src, m)
	}
}
