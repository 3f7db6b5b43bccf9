package main

import (
	"fmt"
	"io"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/fs"
	"github.com/akeil/multitouch/pkg/trace"
)

func doSample(kind, path string, steps int) error {
	center := multitouch.Pt(400, 300)

	var t *trace.Trace
	switch kind {
	case "rotate":
		t = trace.Twist(center, 200, 90, steps)
	case "zoom":
		t = trace.Pinch(center, 150, 450, steps)
	case "drag":
		t = trace.Pan(center, multitouch.Pt(550, 380), 150, steps)
	case "idle":
		t = trace.Idle(center, 150, steps)
	default:
		return fmt.Errorf("unsupported gesture kind %q", kind)
	}

	err := fs.WriteFile(path, func(w io.Writer) error {
		return trace.WriteTrace(w, t)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v %v trace with %d events saved as %q\n", checkmark, kind, t.Len(), path)
	return nil
}
