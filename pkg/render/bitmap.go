package render

import (
	"image"
	"image/png"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"

	"github.com/akeil/multitouch/internal/imaging"
	"github.com/akeil/multitouch/internal/logging"
	"github.com/akeil/multitouch/pkg/affine"
)

// PNG paints src transformed by m onto the viewport and writes the
// result as PNG to the given writer.
func (c *Context) PNG(w io.Writer, src image.Image, m affine.Matrix) error {
	dst := c.Bitmap(src, m)
	return png.Encode(w, dst)
}

// Bitmap paints src transformed by m onto a new viewport image.
func (c *Context) Bitmap(src image.Image, m affine.Matrix) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	if c.Background != nil {
		imaging.Fill(dst, c.Background)
	}

	// A singular transform collapses the image to a line or a point.
	if _, ok := m.Invert(); !ok || !m.IsFinite() {
		logging.Warning("Skip rendering with degenerate transform %v", m)
		return dst
	}

	draw.BiLinear.Transform(dst, m.Aff3(), src, src.Bounds(), draw.Over, nil)

	if c.Outline {
		drawOutline(dst, src.Bounds(), m)
	}

	return dst
}

// drawOutline strokes the transformed bounds of the source image
// and marks its center.
func drawOutline(dst *image.RGBA, b image.Rectangle, m affine.Matrix) {
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetMatrixTransform(toDraw2D(m))

	gc.SetStrokeColor(outlineColor)
	gc.SetLineWidth(2 / m.Scale())
	draw2dkit.Rectangle(gc, float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y))
	gc.Stroke()

	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	gc.SetFillColor(pivotColor)
	draw2dkit.Circle(gc, cx, cy, 4/m.Scale())
	gc.Fill()
}

// toDraw2D converts to the column-major layout used by draw2d,
// where x' = x*tr[0] + y*tr[2] + tr[4] and y' = x*tr[1] + y*tr[3] + tr[5].
func toDraw2D(m affine.Matrix) draw2d.Matrix {
	return draw2d.Matrix{m[0], m[3], m[1], m[4], m[2], m[5]}
}
