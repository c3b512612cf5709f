package pulsebiten

import (
	"errors"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool

	Background color.Color
}

var DefaultWindowConfig = WindowConfig{
	Title:      "pulse",
	Width:      800,
	Height:     600,
	Background: color.Black,
}

// Host runs a pulse.App inside an ebiten game. Each frame of the
// app runs in ebitens Draw callback, followed by drawing the Stage.
type Host struct {
	Window WindowConfig
	Stage  *Stage

	Keyboard *Keyboard
	Gamepads *Gamepads

	app        *pulse.App
	overlays   []func(screen *ebiten.Image)
	overlay    timingsOverlay
	screenSize gm.Vec
}

// GamePlugin creates a new Host. Add it to an app using AddPlugin.
func GamePlugin(window WindowConfig) *Host {
	return &Host{
		Window:   window,
		Stage:    NewStage(window.Background),
		Keyboard: &Keyboard{},
		Gamepads: &Gamepads{},
	}
}

func (h *Host) ApplyTo(app *pulse.App) {
	h.app = app

	app.Input.AddDevice(h.Keyboard)
	app.Input.AddDevice(h.Gamepads)

	app.AddSystems(pulse.Update, func(app *pulse.App) {
		if app.Input.KeyDown(KeyOf(ebiten.KeyF3)) {
			toggleTimings(app)
		}
	})

	app.RunLoop(h.run)
}

// AddOverlay registers a function that draws on top of the stage each frame.
func (h *Host) AddOverlay(draw func(screen *ebiten.Image)) {
	h.overlays = append(h.overlays, draw)
}

// ScreenSize returns the size of the screen in pixels.
func (h *Host) ScreenSize() gm.Vec {
	return h.screenSize
}

func toggleTimings(app *pulse.App) {
	if app.Stats != nil {
		app.Stats = nil
	} else {
		app.Stats = pulse.NewTimingStats()
	}
}

func (h *Host) run(app *pulse.App) error {
	ebiten.SetWindowTitle(h.Window.Title)
	ebiten.SetWindowSize(h.Window.Width, h.Window.Height)

	if !h.Window.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	app.Logger.Info("Starting game",
		zap.String("title", h.Window.Title),
		zap.Int("width", h.Window.Width),
		zap.Int("height", h.Window.Height))

	var options ebiten.RunGameOptions
	options.SingleThread = true

	err := ebiten.RunGameWithOptions(&game{host: h}, &options)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}

type game struct {
	host *Host
}

func (g *game) Update() error {
	exiting, err := g.host.app.Exiting()
	if !exiting {
		return nil
	}

	if err != nil {
		return err
	}

	return ebiten.Termination
}

func (g *game) Draw(screen *ebiten.Image) {
	app := g.host.app

	app.Frame()

	g.host.Stage.Draw(screen)

	for _, draw := range g.host.overlays {
		draw(screen)
	}

	if app.Stats != nil {
		g.host.overlay.Draw(screen, app.Stats)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.host.screenSize = gm.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
