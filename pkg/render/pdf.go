package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/multitouch/internal/logging"
	"github.com/akeil/multitouch/pkg/affine"
)

// PDF renders the viewport as a single page PDF document and writes it
// to the given writer. One pixel of the viewport is one point on the page.
func (c *Context) PDF(w io.Writer, src image.Image, m affine.Matrix) error {
	pdf := c.setupPDF()
	pdf.AddPage()

	width := float64(c.Width)
	height := float64(c.Height)

	if c.Background != nil {
		r, g, b := rgb(c.Background)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(0, 0, width, height, "F")
	}

	if _, ok := m.Invert(); !ok || !m.IsFinite() {
		logging.Warning("Skip rendering with degenerate transform %v", m)
		return pdf.Output(w)
	}

	err := c.imageToPDF(pdf, src, m)
	if err != nil {
		return err
	}

	return pdf.Output(w)
}

func (c *Context) setupPDF() *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: float64(c.Width),
			Ht: float64(c.Height),
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("multitouch", true)
	return pdf
}

func (c *Context) imageToPDF(pdf *gofpdf.Fpdf, src image.Image, m affine.Matrix) error {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	var buf bytes.Buffer
	err := png.Encode(&buf, src)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	b := src.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	pdf.TransformBegin()
	pdf.Transform(pdfMatrix(m, float64(c.Height)))

	pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")

	if c.Outline {
		r, g, b := rgb(outlineColor)
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(2 / m.Scale())
		pdf.Rect(0, 0, w, h, "D")
	}

	pdf.TransformEnd()

	return pdf.Error()
}

// pdfMatrix converts a transform in view coordinates (origin top left,
// y down) to a PDF transformation (origin bottom left, y up) for a page
// of the given height.
func pdfMatrix(m affine.Matrix, pageHeight float64) gofpdf.TransformMatrix {
	// flip maps view to PDF coordinates and is its own inverse
	flip := affine.Matrix{
		1, 0, 0,
		0, -1, pageHeight,
		0, 0, 1,
	}
	p := flip.Multiply(m).Multiply(flip)

	// PDF: x' = a*x + c*y + e, y' = b*x + d*y + f
	return gofpdf.TransformMatrix{
		A: p[0],
		B: p[3],
		C: p[1],
		D: p[4],
		E: p[2],
		F: p[5],
	}
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
