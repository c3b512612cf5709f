package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[engine]
frame_rate = 30

[window]
title = "demo"
background = "#ff0000"

[input]
rumble = "250ms"
`))

	require.NoError(t, err)

	require.Equal(t, 30.0, cfg.Engine.FrameRate)
	require.Equal(t, 1.0, cfg.Engine.TimeScale)

	require.Equal(t, "demo", cfg.Window.Title)
	require.Equal(t, Default().Window.Width, cfg.Window.Width)
	require.Equal(t, color.RGB(1, 0, 0), cfg.Window.Background)

	require.Equal(t, 250*time.Millisecond, cfg.Input.Rumble)
	require.Equal(t, pulse.DefaultNavTuning, cfg.NavTuning())

	require.Equal(t, "info", cfg.Logging.Level)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("[engine]\nframe_rate = 0\n"))
	require.ErrorContains(t, err, "frame_rate")

	_, err = Parse([]byte("[input]\ndeadzone = 0.9\nthreshold = 0.5\n"))
	require.ErrorContains(t, err, "deadzone")

	_, err = Parse([]byte("[profile]\nmode = \"block\"\n"))
	require.ErrorContains(t, err, "profile.mode")

	_, err = Parse([]byte("[window]\nbackground = \"purple\"\n"))
	require.Error(t, err)

	_, err = Parse([]byte("not toml"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[physics]\ngravity_y = 9.81\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9.81, cfg.SpaceConfig().Gravity.Y)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Engine.FrameRate = 120
	cfg.Engine.TimeScale = 0.5

	app := pulse.NewApp(pulse.Options{})
	cfg.Apply(app)

	require.Equal(t, 120.0, app.Clock.FrameRate())
	require.Equal(t, 0.5, app.Clock.Scale)
}

func TestHostWindow(t *testing.T) {
	cfg := Default()
	cfg.Window.Resizable = false

	window := cfg.HostWindow()
	require.True(t, window.DisableResize)
	require.Equal(t, cfg.Window.Title, window.Title)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := NewLogger(LoggingConfig{Level: "debug", Format: format})
		require.NoError(t, err)
		require.NotNil(t, logger)
	}

	// unknown levels fall back to info
	logger, err := NewLogger(LoggingConfig{Level: "loud"})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(-1))
}
