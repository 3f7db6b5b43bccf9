package trace

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/akeil/multitouch"
)

// size of an event record without points
const eventLen = 12

// ReadTrace reads a complete trace from the given reader.
func ReadTrace(r io.Reader) (*Trace, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	t := &Trace{}
	err = t.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UnmarshalBinary reads a trace from the given bytes.
func (t *Trace) UnmarshalBinary(data []byte) error {
	return readInto(data, t)
}

func readInto(data []byte, t *Trace) error {
	r := newReader(data)

	err := r.readHeader()
	if err != nil {
		return err
	}
	t.Version = r.version

	n, err := r.readNumber()
	if err != nil {
		return fmt.Errorf("failed to read event count")
	}

	// every event needs at least eventLen bytes
	if int64(n)*eventLen > int64(r.Len()) {
		return fmt.Errorf("event count %d exceeds data size", n)
	}

	t.Events = make([]multitouch.Event, n)
	for i := uint32(0); i < n; i++ {
		e, err := r.readEvent()
		if err != nil {
			return fmt.Errorf("event %d: %v", i, err)
		}
		t.Events[i] = e
	}

	if r.Len() != 0 {
		return fmt.Errorf("%d unexpected bytes after last event", r.Len())
	}

	return nil
}

type reader struct {
	*bytes.Reader
	version Version
}

// newReader creates a new trace reader.
func newReader(data []byte) reader {
	return reader{bytes.NewReader(data), V1}
}

// readHeader and check if it is one of the supported headers.
func (r *reader) readHeader() error {
	buf := make([]byte, headerLen)

	n, err := io.ReadFull(r, buf)
	if err != nil || n != headerLen {
		return fmt.Errorf("unexpected header size")
	}

	switch string(buf) {
	case headerV1:
		r.version = V1
	default:
		return fmt.Errorf("unsupported header")
	}

	return nil
}

func (r *reader) readEvent() (multitouch.Event, error) {
	var e multitouch.Event

	var kind uint32
	err := binary.Read(r, endianess, &kind)
	if err != nil {
		return e, fmt.Errorf("failed to read event kind")
	}
	e.Kind = multitouch.EventKind(kind)

	remaining, err := r.readNumber()
	if err != nil {
		return e, fmt.Errorf("failed to read remaining contacts")
	}
	e.Remaining = int(remaining)

	nPoints, err := r.readNumber()
	if err != nil {
		return e, fmt.Errorf("failed to read number of points")
	}
	if nPoints > maxPoints {
		return e, fmt.Errorf("too many points: %d", nPoints)
	}

	if nPoints > 0 {
		e.Points = make([]multitouch.Point, nPoints)
	}
	for i := uint32(0); i < nPoints; i++ {
		var xy [2]float32
		err = binary.Read(r, endianess, &xy)
		if err != nil {
			return e, fmt.Errorf("failed to read point %d", i)
		}
		e.Points[i] = multitouch.Pt(float64(xy[0]), float64(xy[1]))
	}

	return e, nil
}

func (r *reader) readNumber() (uint32, error) {
	var n uint32
	err := binary.Read(r, endianess, &n)
	return n, err
}
