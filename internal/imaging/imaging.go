package imaging

import (
	"image"
	"image/color"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// Load decodes a PNG or JPEG image from the given path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a PNG or JPEG image.
func Decode(r io.Reader) (image.Image, error) {
	i, _, err := image.Decode(r)
	return i, err
}

// Fit creates a copy of the given image, scaled to fit into a
// width x height box while keeping the aspect ratio.
//
// Images that already fit are returned as they are.
func Fit(i image.Image, width, height int) image.Image {
	b := i.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return i
	}

	f := math.Min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	w := int(math.Max(1, math.Round(float64(b.Dx())*f)))
	h := int(math.Max(1, math.Round(float64(b.Dy())*f)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), i, b, draw.Over, nil)
	return dst
}

// Placeholder creates a checkerboard image with a marked top-left cell.
// The marked cell shows where the origin went after a transform.
func Placeholder(width, height, cell int) image.Image {
	if cell < 1 {
		cell = 1
	}

	light := color.RGBA{220, 220, 220, 255}
	dark := color.RGBA{90, 90, 90, 255}
	mark := color.RGBA{200, 40, 40, 255}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cx, cy := x/cell, y/cell
			switch {
			case cx == 0 && cy == 0:
				dst.Set(x, y, mark)
			case (cx+cy)%2 == 0:
				dst.Set(x, y, light)
			default:
				dst.Set(x, y, dark)
			}
		}
	}

	return dst
}

// Fill paints the whole image with a uniform color.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
