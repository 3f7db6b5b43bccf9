package multitouch

import (
	"github.com/akeil/multitouch/internal/logging"
)

// SetLogLevel sets the log level by name: "debug", "info", "warning",
// "error" or "none". Unknown names disable logging.
func SetLogLevel(level string) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
