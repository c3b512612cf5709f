package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/physics"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Window  WindowConfig  `toml:"window"`
	Input   InputConfig   `toml:"input"`
	Physics PhysicsConfig `toml:"physics"`
	Scripts ScriptsConfig `toml:"scripts"`
	Logging LoggingConfig `toml:"logging"`
	Profile ProfileConfig `toml:"profile"`
}

type EngineConfig struct {
	FrameRate float64 `toml:"frame_rate"`
	TimeScale float64 `toml:"time_scale"`
}

type WindowConfig struct {
	Title      string      `toml:"title"`
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Resizable  bool        `toml:"resizable"`
	Background color.Color `toml:"background"` // #rrggbb
}

type InputConfig struct {
	Bindings string `toml:"bindings"` // yaml file, defaults are used if empty

	// cooldowns in target frame intervals
	EdgeDelay      float64 `toml:"edge_delay"`
	RepeatInterval float64 `toml:"repeat_interval"`

	Deadzone  float64 `toml:"deadzone"`
	Threshold float64 `toml:"threshold"`

	Rumble time.Duration `toml:"rumble"`
}

type PhysicsConfig struct {
	GravityX   float64 `toml:"gravity_x"`
	GravityY   float64 `toml:"gravity_y"`
	Damping    float64 `toml:"damping"`
	Iterations uint    `toml:"iterations"`
	Substeps   uint    `toml:"substeps"`
	Debug      bool    `toml:"debug"`
}

type ScriptsConfig struct {
	Dir string `toml:"dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", "cpu", "mem" or "trace"
	Path string `toml:"path"`
}

// Load reads the config file at path. Values missing in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			FrameRate: pulse.DefaultFrameRate,
			TimeScale: 1,
		},
		Window: WindowConfig{
			Title:      pulsebiten.DefaultWindowConfig.Title,
			Width:      pulsebiten.DefaultWindowConfig.Width,
			Height:     pulsebiten.DefaultWindowConfig.Height,
			Resizable:  true,
			Background: color.Gray(0.07),
		},
		Input: InputConfig{
			EdgeDelay:      pulse.DefaultNavTuning.EdgeDelay,
			RepeatInterval: pulse.DefaultNavTuning.RepeatInterval,
			Deadzone:       pulse.DefaultNavTuning.Deadzone,
			Threshold:      pulse.DefaultNavTuning.Threshold,
			Rumble:         150 * time.Millisecond,
		},
		Physics: PhysicsConfig{
			Damping:    physics.DefaultSpaceConfig.Damping,
			Iterations: physics.DefaultSpaceConfig.Iterations,
			Substeps:   physics.DefaultSpaceConfig.Substeps,
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}

func (c *Config) validate() error {
	var errs []error

	if c.Engine.FrameRate <= 0 {
		errs = append(errs, errors.New("engine.frame_rate must be positive"))
	}

	if c.Engine.TimeScale < 0 {
		errs = append(errs, errors.New("engine.time_scale must not be negative"))
	}

	if c.Input.Deadzone > c.Input.Threshold {
		errs = append(errs, errors.New("input.deadzone must not exceed input.threshold"))
	}

	switch c.Profile.Mode {
	case "", "cpu", "mem", "trace":
	default:
		errs = append(errs, fmt.Errorf("unknown profile.mode %q", c.Profile.Mode))
	}

	return errors.Join(errs...)
}

func (c *Config) NavTuning() pulse.NavTuning {
	return pulse.NavTuning{
		EdgeDelay:      c.Input.EdgeDelay,
		RepeatInterval: c.Input.RepeatInterval,
		Deadzone:       c.Input.Deadzone,
		Threshold:      c.Input.Threshold,
	}
}

func (c *Config) HostWindow() pulsebiten.WindowConfig {
	return pulsebiten.WindowConfig{
		Title:         c.Window.Title,
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		DisableResize: !c.Window.Resizable,
		Background:    c.Window.Background,
	}
}

func (c *Config) SpaceConfig() physics.SpaceConfig {
	return physics.SpaceConfig{
		Gravity:    gm.Vec{X: c.Physics.GravityX, Y: c.Physics.GravityY},
		Damping:    c.Physics.Damping,
		Iterations: c.Physics.Iterations,
		Substeps:   c.Physics.Substeps,
	}
}

// Apply configures the clock of the app.
func (c *Config) Apply(app *pulse.App) {
	app.Clock.SetFrameRate(c.Engine.FrameRate)
	app.Clock.Scale = c.Engine.TimeScale
}
