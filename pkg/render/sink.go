package render

import (
	"image"
	"io"
	"sync"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/pkg/affine"
)

var _ multitouch.Sink = (*ImageSink)(nil)

// ImageSink is a multitouch.Sink that keeps the latest transform for an
// image, so it can be rendered on demand.
type ImageSink struct {
	ctx     *Context
	src     image.Image
	mx      sync.Mutex
	matrix  affine.Matrix
	updates int
}

// NewImageSink creates a sink for the given source image.
// A nil image selects the placeholder pattern.
func NewImageSink(c *Context, src image.Image) *ImageSink {
	return &ImageSink{
		ctx:    c,
		src:    c.Source(src),
		matrix: affine.Identity(),
	}
}

// Apply stores the transform.
func (s *ImageSink) Apply(m affine.Matrix) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.matrix = m
	s.updates++
	return nil
}

// Matrix returns the latest transform.
func (s *ImageSink) Matrix() affine.Matrix {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.matrix
}

// Updates returns how often Apply was called.
func (s *ImageSink) Updates() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.updates
}

// Render writes the image with the latest transform in the given format.
func (s *ImageSink) Render(w io.Writer, f Format) error {
	return s.ctx.Render(w, s.src, s.Matrix(), f)
}
