package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/internal/config"
	"github.com/frameloop/pulse/physics"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/script"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

const (
	SceneTitle pulse.SceneId = "title"
	SceneGame  pulse.SceneId = "game"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()

	case err != nil:
		return err
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	defer func() { _ = log.Sync() }()

	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop()
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	app := pulse.NewApp(pulse.Options{
		FrameRate: cfg.Engine.FrameRate,
		Logger:    log,
	})

	cfg.Apply(app)

	host := pulsebiten.GamePlugin(cfg.HostWindow())
	host.Gamepads.Rumble = cfg.Input.Rumble
	app.AddPlugin(host)

	engine := script.NewEngine(log.Named("script"))
	defer engine.Close()

	scripts, err := loadScripts(engine, cfg.Scripts.Dir)
	if err != nil {
		return err
	}

	game := &demo{
		config:  cfg,
		host:    host,
		scripts: scripts,
		nav:     pulse.NewNavigator(bindings, cfg.NavTuning()),
	}

	app.Scenes.Add(SceneTitle, game.titleScene)
	app.Scenes.Add(SceneGame, game.gameScene)

	host.AddOverlay(game.drawLabels)

	if cfg.Physics.Debug {
		host.AddOverlay(game.drawPhysics)
	}

	app.AddPlugin(pulse.PluginFunc(func(app *pulse.App) {
		app.AddSystems(pulse.Update, game.handleEscape)
	}))

	app.LoadScene(SceneTitle)

	log.Info("Running", zap.Float64("frameRate", cfg.Engine.FrameRate))

	return app.Run()
}

func startProfile(cfg config.ProfileConfig) func() {
	var mode func(*profile.Profile)

	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil
	}

	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook).Stop
}

type demo struct {
	config  *config.Config
	host    *pulsebiten.Host
	scripts *scripts
	nav     *pulse.Navigator

	menu  *menu
	space *physics.Space
}

func (d *demo) handleEscape(app *pulse.App) {
	if !app.Input.KeyDown("Escape") {
		return
	}

	switch current, _ := app.Scenes.Current(); current {
	case SceneGame:
		app.LoadScene(SceneTitle)

	default:
		app.Exit(nil)
	}
}
