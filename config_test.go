package multitouch

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/multitouch/internal/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	err := DefaultConfig().Validate()
	if err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestReadConfig(t *testing.T) {
	data := `
[thresholds]
rotate_angle = 12.0
unwrap_angles = true

[render]
width = 320
background = "#102030"
`
	cfg, err := ReadConfig(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.Thresholds.RotateAngle)
	assert.True(t, cfg.Thresholds.UnwrapAngles)
	// not in the file, default is kept
	assert.Equal(t, 5.0, cfg.Thresholds.SteadyAngle)
	assert.Equal(t, 320, cfg.Render.Width)
	assert.Equal(t, 600, cfg.Render.Height)
	assert.Equal(t, "warning", cfg.Log.Level)

	c, err := cfg.Render.Color()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, c)
}

func TestReadConfigInvalid(t *testing.T) {
	cases := []string{
		"[thresholds]\nsteady_angle = 10.0\n",
		"[thresholds]\ndrag_midpoint = -1.0\n",
		"[log]\nlevel = \"loud\"\n",
		"[render]\nwidth = 0\n",
		"[render]\nbackground = \"blue\"\n",
	}
	for _, data := range cases {
		_, err := ReadConfig(strings.NewReader(data))
		if !errors.IsValidationError(err) {
			t.Errorf("expected validation error for %q, got %v", data, err)
		}
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Thresholds.ZoomDistance = 150
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "multitouch.toml")
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(unwrapAll(err)), "unexpected error %v", err)

	cfg, err := LoadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConfig(&buf, DefaultConfig()))
	s := buf.String()
	assert.Contains(t, s, "[thresholds]")
	assert.Contains(t, s, "rotate_angle = 8.0")
}

func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}
