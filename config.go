package multitouch

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/akeil/multitouch/internal/errors"
	"github.com/akeil/multitouch/internal/fs"
	"github.com/akeil/multitouch/internal/logging"
)

// Config is the content of a multitouch config file.
type Config struct {
	Thresholds Thresholds   `toml:"thresholds"`
	Log        LogConfig    `toml:"log"`
	Render     RenderConfig `toml:"render"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// RenderConfig holds the viewport used by the rendering sinks.
type RenderConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Outline    bool   `toml:"outline"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		Log: LogConfig{
			Level: "warning",
		},
		Render: RenderConfig{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
		},
	}
}

// LoadConfig reads a TOML config file.
// Settings missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	logging.Debug("Load config from %q", path)
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "read config %q", path)
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, errors.Wrap(err, "invalid config %q", path)
	}

	return cfg, nil
}

// ReadConfig decodes a TOML config from r.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// WriteConfig encodes the config as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// SaveConfig writes the config to the given path.
func SaveConfig(path string, cfg Config) error {
	return fs.WriteFile(path, func(w io.Writer) error {
		return WriteConfig(w, cfg)
	})
}

// Validate checks all sections of the config.
func (c Config) Validate() error {
	err := c.Thresholds.Validate()
	if err != nil {
		return err
	}

	_, err = logging.ParseLevel(c.Log.Level)
	if err != nil {
		return errors.NewValidationError("%v", err)
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.NewValidationError("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}

	_, err = c.Render.Color()
	return err
}

// Color parses the background color given as "#rrggbb" or "#rrggbbaa".
func (r RenderConfig) Color() (color.RGBA, error) {
	s := strings.TrimPrefix(r.Background, "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.RGBA{}, errors.NewValidationError("invalid color %q", r.Background)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.NewValidationError("invalid color %q", r.Background)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func (r RenderConfig) String() string {
	return fmt.Sprintf("%dx%d %v", r.Width, r.Height, r.Background)
}
