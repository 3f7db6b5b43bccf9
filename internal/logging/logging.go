package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level controls which log messages are written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelNone:
		return "none"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel converts a level name ("debug", "info", "warning", "error",
// "none") to a Level. Names are case insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "none", "off":
		return LevelNone, nil
	}
	return LevelNone, fmt.Errorf("unknown log level %q", s)
}

var (
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger

	out   io.Writer = os.Stderr
	level           = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debugLog = log.New(io.Discard, "D ", flags)
	infoLog = log.New(io.Discard, "I ", flags)
	warningLog = log.New(io.Discard, "W ", flags)
	errorLog = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	level = l
	apply()
}

// SetOutput changes the destination for enabled loggers.
func SetOutput(w io.Writer) {
	out = w
	apply()
}

// CurrentLevel returns the active log level.
func CurrentLevel() Level {
	return level
}

func apply() {
	loggers := []*log.Logger{debugLog, infoLog, warningLog, errorLog}
	for i, l := range loggers {
		if Level(i) >= level {
			l.SetOutput(out)
		} else {
			l.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debugLog.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	infoLog.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warningLog.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errorLog.Printf(msg, v...)
}
