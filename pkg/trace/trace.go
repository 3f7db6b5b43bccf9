// Package trace reads and writes recorded touch gestures.
//
// A trace file starts with a fixed size ASCII header, followed by the
// number of events and the events themselves. All numbers are little
// endian. Each event is stored as
//
//  uint32     kind
//  uint32     remaining contacts (for contact-end)
//  uint32     number of points (0..2)
//  float32    x, y for each point
//
package trace

import (
	"encoding/binary"

	"github.com/akeil/multitouch"
)

// Header starting a .trace binary file.
const (
	headerV1  = "multitouch .trace file, version=1          "
	headerLen = 43
)

// maxPoints is the number of contacts a single event can carry.
const maxPoints = 2

var endianess = binary.LittleEndian

// Version defines the version number of the trace format.
type Version int

const (
	V1 Version = iota + 1
)

// Trace is a recorded sequence of touch events.
type Trace struct {
	Version Version
	Events  []multitouch.Event
}

// New creates a trace for the given events.
func New(events ...multitouch.Event) *Trace {
	return &Trace{
		Version: V1,
		Events:  events,
	}
}

// Len returns the number of events.
func (t *Trace) Len() int {
	return len(t.Events)
}

// Append adds events at the end of the trace.
func (t *Trace) Append(events ...multitouch.Event) {
	t.Events = append(t.Events, events...)
}
