package pulse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppPhaseOrder(t *testing.T) {
	app := NewApp(Options{})

	var log []string

	for _, phase := range Phases {
		app.AddSystems(phase, func(app *App) {
			log = append(log, phase.String())
		})
	}

	app.Instantiate(&recordingEntity{name: "e", log: &log})

	sequence := app.Sequencer.Create()
	sequence.Once(func() { log = append(log, "task") })
	sequence.Start()

	app.Timers.Add(TimerConfig{
		Units:    1,
		Callback: func(float64) { log = append(log, "timer") },
	})

	log = nil
	app.Frame()

	require.Equal(t, []string{
		"First",
		"task", "timer", "PreUpdate",
		"e.update", "Update",
		"e.lateupdate", "PostUpdate",
		"e.draw", "Render",
		"Last",
	}, log)
}

func TestAppSystemsRunInOrder(t *testing.T) {
	app := NewApp(Options{})

	var log []int

	app.AddSystems(Update,
		func(app *App) { log = append(log, 1) },
		func(app *App) { log = append(log, 2) },
	)

	app.AddSystems(Update, func(app *App) { log = append(log, 3) })

	app.Frame()

	require.Equal(t, []int{1, 2, 3}, log)
}

func TestAppUnknownPhasePanics(t *testing.T) {
	app := NewApp(Options{})

	require.Panics(t, func() {
		app.AddSystems(phaseCount, func(app *App) {})
	})
}

func TestAppInputEdgesAcrossFrames(t *testing.T) {
	app := NewApp(Options{})

	var downs int
	app.AddSystems(Update, func(app *App) {
		if app.Input.KeyDown("Space") {
			downs += 1
		}
	})

	app.Input.KeyPressed("Space")

	for range 5 {
		app.Frame()
	}

	require.Equal(t, 1, downs)
}

func TestAppRunUntilExit(t *testing.T) {
	app := NewApp(Options{})

	var log []string
	app.Instantiate(&recordingEntity{Base: Base{Preserve: true}, name: "e", log: &log})

	errStop := errors.New("stop")

	var frames int
	app.AddSystems(Last, func(app *App) {
		frames += 1

		if frames == 3 {
			app.Exit(errStop)
		}
	})

	err := app.Run()
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 3, frames)

	exiting, exitErr := app.Exiting()
	require.True(t, exiting)
	require.ErrorIs(t, exitErr, errStop)

	// closing the app removes even preserved entities
	require.Contains(t, log, "e.unload")
	require.Equal(t, 0, app.Entities.Len())
}

func TestAppCustomRunLoop(t *testing.T) {
	app := NewApp(Options{})

	app.RunLoop(func(app *App) error {
		app.Frame()
		app.Frame()
		return nil
	})

	require.NoError(t, app.Run())
	require.Equal(t, uint64(2), app.Clock.Frames())
}

func TestAppCloseStopsSequencesAndTimers(t *testing.T) {
	app := NewApp(Options{})

	sequence := app.Sequencer.Create()
	sequence.Do(func() bool { return false })
	sequence.Start()

	app.Timers.Add(TimerConfig{Units: 100})

	app.Frame()
	require.Equal(t, 1, app.Sequencer.Running())
	require.Equal(t, 1, app.Timers.Len())

	app.Close()
	require.Equal(t, 0, app.Sequencer.Running())
	require.Equal(t, 0, app.Timers.Len())
}

func TestAppCloseFromTask(t *testing.T) {
	app := NewApp(Options{})

	var log []string
	app.Instantiate(&recordingEntity{name: "e", log: &log})

	first := app.Sequencer.Create()
	first.Do(func() bool { return false })
	first.Start()

	second := app.Sequencer.Create()
	second.Once(app.Close)
	second.Start()

	require.NotPanics(t, app.Frame)

	require.Equal(t, 0, app.Sequencer.Running())
	require.Equal(t, 0, app.Entities.Len())
	require.True(t, first.Finished())
}

func TestAppStats(t *testing.T) {
	app := NewApp(Options{})
	app.Stats = NewTimingStats()

	for range 4 {
		app.Frame()
	}

	require.Equal(t, 4, app.Stats.Frame.Count)

	for _, phase := range Phases {
		require.Equal(t, 4, app.Stats.ByPhase[phase].Count)
	}
}
