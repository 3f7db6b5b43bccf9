package multitouch

import (
	"fmt"
	"strings"
)

// Mode is the gesture type a two finger touch sequence was classified as.
type Mode int

const (
	// None means the gesture is not (yet) decided.
	None Mode = iota
	Drag
	Zoom
	Rotate
)

var modeNames = map[Mode]string{
	None:   "none",
	Drag:   "drag",
	Zoom:   "zoom",
	Rotate: "rotate",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name as returned by Mode.String to a Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(s)
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return None, fmt.Errorf("unknown mode %q", s)
}
