package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFit(t *testing.T) {
	src := Placeholder(400, 200, 20)

	dst := Fit(src, 100, 100)
	b := dst.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("unexpected size %v", b)
	}

	same := Fit(src, 800, 600)
	if same != src {
		t.Errorf("image that fits should be returned unchanged")
	}
}

func TestPlaceholder(t *testing.T) {
	i := Placeholder(40, 40, 10)

	r, _, _, _ := i.At(0, 0).RGBA()
	if r>>8 != 200 {
		t.Errorf("origin cell should be marked, got %v", i.At(0, 0))
	}
	if i.At(15, 15) != i.At(5, 25) {
		t.Errorf("diagonal cells should have the same color")
	}
	if i.At(15, 5) == i.At(25, 5) {
		t.Errorf("neighbour cells should differ")
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	err := png.Encode(&buf, Placeholder(8, 8, 4))
	if err != nil {
		t.Fatal(err)
	}

	i, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if i.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("unexpected bounds %v", i.Bounds())
	}
}

func TestFill(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Fill(dst, color.White)
	if dst.RGBAAt(3, 3) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("fill did not cover the image")
	}
}
