package trace

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/akeil/multitouch"
)

// MarshalBinary returns the byte representation of the trace.
func (t *Trace) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := write(io.Writer(buf), t)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteTrace writes the given trace to the given writer.
func WriteTrace(w io.Writer, t *Trace) error {
	return write(w, t)
}

func write(w io.Writer, t *Trace) error {
	err := writeHeader(w, t)
	if err != nil {
		return err
	}

	err = binary.Write(w, endianess, uint32(len(t.Events)))
	if err != nil {
		return err
	}

	for i, e := range t.Events {
		err = writeEvent(w, e)
		if err != nil {
			return fmt.Errorf("event %d: %v", i, err)
		}
	}

	return nil
}

func writeHeader(w io.Writer, t *Trace) error {
	var h string
	switch t.Version {
	case V1:
		h = headerV1
	default:
		return fmt.Errorf("invalid version %v", t.Version)
	}

	_, err := w.Write([]byte(h))
	return err
}

func writeEvent(w io.Writer, e multitouch.Event) error {
	if len(e.Points) > maxPoints {
		return fmt.Errorf("too many points: %d", len(e.Points))
	}
	if e.Remaining < 0 {
		return fmt.Errorf("negative remaining count: %d", e.Remaining)
	}

	head := [3]uint32{uint32(e.Kind), uint32(e.Remaining), uint32(len(e.Points))}
	err := binary.Write(w, endianess, head)
	if err != nil {
		return err
	}

	for _, p := range e.Points {
		xy := [2]float32{float32(p.X), float32(p.Y)}
		err = binary.Write(w, endianess, xy)
		if err != nil {
			return err
		}
	}

	return nil
}
