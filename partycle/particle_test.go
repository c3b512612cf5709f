package partycle

import (
	"testing"
	"time"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/stretchr/testify/require"
)

func unitDeltaApp() *pulse.App {
	app := pulse.NewApp(pulse.Options{})

	var now time.Time
	app.Clock.Now = func() time.Time {
		now = now.Add(app.Clock.TargetInterval())
		return now
	}

	return app
}

func TestParticleDecays(t *testing.T) {
	app := unitDeltaApp()
	stage := pulsebiten.NewStage(color.Black)

	particle := &Particle{
		Stage:    stage,
		Velocity: gm.Vec{X: 1},
		Speed:    2,
		Radius:   10,
	}

	id := app.Instantiate(particle)
	require.Equal(t, 1, stage.Len())

	var frames int
	for app.Entities.Alive(id) {
		app.Frame()
		frames += 1

		require.Less(t, frames, 100, "particle never died")
	}

	// 25 frames of life, the first frame has a delta of one too
	require.InDelta(t, 25, frames, 1)

	require.Equal(t, 0, stage.Len())
	require.Greater(t, particle.Position.X, 0.0)
}

func TestParticleShrinks(t *testing.T) {
	app := unitDeltaApp()
	stage := pulsebiten.NewStage(color.Black)

	particle := &Particle{Stage: stage, Radius: 10, Decay: 0.1}
	app.Instantiate(particle)

	app.Frame()
	app.Frame()

	node := stage.Nodes()[0]
	require.InDelta(t, 0.8, node.Scale, 1e-9)
}

func TestBurst(t *testing.T) {
	app := unitDeltaApp()

	burst := Burst{Count: 8, Speed: 3, Spread: 5}
	ids := burst.Emit(app, gm.Vec{X: 100, Y: 100})

	require.Len(t, ids, 8)

	for _, id := range ids {
		entity, ok := app.Entities.Get(id)
		require.True(t, ok)

		particle := entity.(*Particle)
		require.LessOrEqual(t, particle.Position.Sub(gm.Vec{X: 100, Y: 100}).Length(), 5.0+1e-9)
		require.InDelta(t, 3, particle.Velocity.Length(), 1e-9)
	}
}

func TestEmitterRate(t *testing.T) {
	app := unitDeltaApp()

	emitter := &Emitter{ParticlesPerFrame: 0.5}

	var spawned int
	for idx := range 10 {
		app.Frame()
		spawned += emitter.Update(app, gm.Vec{X: float64(idx)})
	}

	require.Equal(t, 5, spawned)
	require.Equal(t, 5, app.Entities.Len())
}

func TestCurve(t *testing.T) {
	curve := EquidistantCurve(LerpFloat[float64], 0, 10, 20)

	require.Equal(t, 0.0, curve.ValueAt(-1))
	require.Equal(t, 5.0, curve.ValueAt(0.25))
	require.Equal(t, 10.0, curve.ValueAt(0.5))
	require.Equal(t, 15.0, curve.ValueAt(0.75))
	require.Equal(t, 20.0, curve.ValueAt(2))

	steps := Curve[float64]{Values: []CurveValue[float64]{{0, 1}, {0.5, 2}}}
	require.Equal(t, 1.0, steps.ValueAt(0.4))
	require.Equal(t, 2.0, steps.ValueAt(0.6))

	require.Equal(t, 7.0, StaticValueCurve(7.0).ValueAt(0.3))
}
