package pulse

import (
	"go.uber.org/zap"
)

// Options configure a new App.
type Options struct {
	// FrameRate is the target frame rate. Defaults to DefaultFrameRate.
	FrameRate float64

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// App is the context of the engine. It owns all subsystems and threads them
// through the frame loop. Call Frame once per display refresh.
type App struct {
	Clock     *Clock
	Input     *InputTracker
	Timers    *TimerPool
	Sequencer *Sequencer
	Entities  *Registry
	Scenes    *Scenes
	Logger    *zap.Logger

	// Stats measures the frame loop if set.
	Stats *TimingStats

	systems [phaseCount][]System
	run     RunLoop

	started bool

	exiting bool
	exitErr error
}

func NewApp(opts Options) *App {
	if opts.FrameRate == 0 {
		opts.FrameRate = DefaultFrameRate
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &App{
		Clock:     NewClock(opts.FrameRate),
		Input:     NewInputTracker(opts.Logger),
		Timers:    &TimerPool{},
		Sequencer: NewSequencer(opts.Logger),
		Entities:  NewRegistry(),
		Scenes:    &Scenes{},
		Logger:    opts.Logger,
	}
}

func (a *App) AddPlugin(plugin Plugin) {
	plugin.ApplyTo(a)
}

// AddSystems adds systems to a phase. They run after the built-in work of the phase,
// in the order they were added. Systems of phase Last run before entities
// are swept and the input snapshot is taken.
func (a *App) AddSystems(phase Phase, system System, systems ...System) {
	if phase >= phaseCount {
		panic("unknown phase: " + phase.String())
	}

	a.systems[phase] = append(a.systems[phase], system)
	a.systems[phase] = append(a.systems[phase], systems...)
}

// Instantiate adds a new entity to the app.
func (a *App) Instantiate(entity Entity) EntityId {
	return a.Entities.Instantiate(a, entity)
}

// Destroy flags an entity for destruction. It is removed at the end of the frame.
func (a *App) Destroy(id EntityId) {
	a.Entities.Destroy(a, id)
}

// LoadScene unloads the current scene and loads a new one.
func (a *App) LoadScene(id SceneId) bool {
	return a.Scenes.Load(a, id)
}

// Delta is a shortcut for a.Clock.Delta().
func (a *App) Delta() float64 {
	return a.Clock.Delta()
}

// Frame runs one iteration of the frame loop.
func (a *App) Frame() {
	if !a.started {
		a.started = true
		a.Clock.Start()
	}

	if a.Stats != nil {
		defer a.Stats.MeasureFrame().Stop()
	}

	a.runPhase(First, func() {
		a.Clock.Tick()
		a.Input.Prepare()
	})

	a.runPhase(PreUpdate, func() {
		a.Sequencer.Update(a.Clock)
		a.Timers.Update(a.Clock.Delta())
	})

	a.runPhase(Update, func() {
		a.Entities.Update(a)
	})

	a.runPhase(PostUpdate, func() {
		a.Entities.LateUpdate(a)
	})

	a.runPhase(Render, func() {
		a.Entities.Draw(a)
	})

	a.runPhase(Last, nil)

	// end the frame
	a.Entities.Sweep()
	a.Input.Finalize()
}

func (a *App) runPhase(phase Phase, builtin func()) {
	if a.Stats != nil {
		defer a.Stats.MeasurePhase(phase).Stop()
	}

	if builtin != nil {
		builtin()
	}

	for _, system := range a.systems[phase] {
		system(a)
	}
}

// Exit requests the app to stop running. The current frame is completed.
func (a *App) Exit(err error) {
	a.exiting = true
	a.exitErr = err
}

// Exiting returns true if Exit was called, together with the error passed to Exit.
func (a *App) Exiting() (bool, error) {
	return a.exiting, a.exitErr
}

// RunLoop sets the host loop used by Run.
func (a *App) RunLoop(run RunLoop) {
	a.run = run
}

// Run drives the app using its host loop. Without a host loop,
// Frame is called in a busy loop until Exit is called.
func (a *App) Run() error {
	if a.run == nil {
		a.run = func(app *App) error {
			for !app.exiting {
				app.Frame()
			}

			return app.exitErr
		}
	}

	defer a.Close()

	return a.run(a)
}

// Close tears down the app. All entities are destroyed, including the preserved ones,
// all sequences are stopped and all timers are dropped.
func (a *App) Close() {
	a.Entities.UnloadAll(a)
	a.Entities.Sweep()

	a.Sequencer.Clear()
	a.Timers.Clear()
}

type Plugin interface {
	ApplyTo(app *App)
}

type PluginFunc func(app *App)

func (plugin PluginFunc) ApplyTo(app *App) {
	plugin(app)
}

// RunLoop drives an App, usually by calling Frame once per display refresh.
type RunLoop func(app *App) error
