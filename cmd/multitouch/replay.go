package main

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/fs"
	"github.com/akeil/multitouch/internal/imaging"
	"github.com/akeil/multitouch/pkg/affine"
	"github.com/akeil/multitouch/pkg/render"
	"github.com/akeil/multitouch/pkg/trace"
)

func doReplay(cfg multitouch.Config, tracePath, imagePath, pngOut, pdfOut string) error {
	t, err := readTrace(tracePath)
	if err != nil {
		return err
	}

	var src image.Image
	if imagePath != "" {
		src, err = imaging.Load(imagePath)
		if err != nil {
			return err
		}
	}

	rc, err := render.NewContext(cfg.Render)
	if err != nil {
		return err
	}
	sink := render.NewImageSink(rc, src)

	var session *multitouch.Session
	mode := multitouch.None
	report := multitouch.SinkFunc(func(m affine.Matrix) error {
		current := session.Transformer().Mode()
		if current != mode {
			fmt.Printf("%v mode %v -> %v\n", ellipsis, mode, current)
			mode = current
		}
		return sink.Apply(m)
	})
	session = multitouch.NewSession(cfg.Thresholds, report)

	fmt.Printf("%v replay %d events from %q\n", ellipsis, t.Len(), tracePath)
	err = session.Replay(t.Events)
	if err != nil {
		fmt.Printf("%v replay failed: %v\n", crossmark, err)
		return err
	}

	m := sink.Matrix()
	fmt.Printf("%v transform %v (scale %.3f, rotation %.1f)\n", checkmark, m, m.Scale(), m.RotationDegrees())

	var group errgroup.Group
	if pngOut != "" {
		group.Go(func() error {
			return renderTo(sink, pngOut, render.PNG)
		})
	}
	if pdfOut != "" {
		group.Go(func() error {
			return renderTo(sink, pdfOut, render.PDF)
		})
	}
	return group.Wait()
}

func readTrace(path string) (*trace.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := trace.ReadTrace(f)
	if err != nil {
		return nil, fmt.Errorf("read trace %q: %v", path, err)
	}

	err = t.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid trace %q: %v", path, err)
	}

	return t, nil
}

func renderTo(sink *render.ImageSink, path string, f render.Format) error {
	err := fs.WriteFile(path, func(w io.Writer) error {
		return sink.Render(w, f)
	})
	if err != nil {
		fmt.Printf("%v failed to render %q: %v\n", crossmark, path, err)
		return err
	}

	fmt.Printf("%v saved %q\n", checkmark, path)
	return nil
}
