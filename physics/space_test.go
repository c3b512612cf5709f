package physics

import (
	"testing"
	"time"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/stretchr/testify/require"
)

type ball struct {
	pulse.Base

	space *Space
	body  *Body

	force gm.Vec
}

func (b *ball) Start(*pulse.App) {
	b.body = b.space.AddBody(&b.Base, BodyConfig{
		Collider: CircleCollider{Radius: 1},
		Mass:     1,
	})
}

func (b *ball) Update(*pulse.App) {
	if b.force != gm.VecZero {
		b.body.ApplyForce(b.force)
	}
}

func unitDeltaApp() *pulse.App {
	app := pulse.NewApp(pulse.Options{FrameRate: 60})

	var now time.Time

	// every frame takes exactly one target interval
	app.Clock.Now = func() time.Time {
		now = now.Add(app.Clock.TargetInterval())
		return now
	}

	return app
}

func TestSpaceMovesOwner(t *testing.T) {
	app := unitDeltaApp()

	space := NewSpace(SpaceConfig{Gravity: gm.Vec{Y: 100}, Damping: 1, Iterations: 10})
	app.Instantiate(space)

	entity := &ball{Base: pulse.At(0, 0), space: space}
	app.Instantiate(entity)

	require.Equal(t, 1, space.Bodies())

	for range 60 {
		app.Frame()
	}

	// falling for about one second
	require.Greater(t, entity.Position.Y, 30.0)
	require.InDelta(t, 0, entity.Position.X, 1e-9)
}

func TestForcesAreAppliedInUpdate(t *testing.T) {
	app := unitDeltaApp()

	space := NewSpace(DefaultSpaceConfig)
	app.Instantiate(space)

	entity := &ball{Base: pulse.At(0, 0), space: space, force: gm.Vec{X: 10}}
	app.Instantiate(entity)

	for range 10 {
		app.Frame()
	}

	require.Greater(t, entity.Position.X, 0.0)
	require.Greater(t, entity.body.Velocity().X, 0.0)
}

func TestBodyIsRemovedWithOwner(t *testing.T) {
	app := unitDeltaApp()

	space := NewSpace(DefaultSpaceConfig)
	app.Instantiate(space)

	entity := &ball{space: space}
	id := app.Instantiate(entity)

	app.Frame()
	require.Equal(t, 1, space.Bodies())

	app.Destroy(id)
	app.Frame()

	require.Equal(t, 0, space.Bodies())
	require.True(t, entity.body.Removed())

	require.NotPanics(t, entity.body.Remove)
}

func TestContacts(t *testing.T) {
	app := unitDeltaApp()

	space := NewSpace(SpaceConfig{Gravity: gm.Vec{Y: 100}, Damping: 1, Iterations: 10})
	app.Instantiate(space)

	floor := space.AddBody(nil, BodyConfig{
		Kind:     Static,
		Collider: SegmentCollider{A: gm.Vec{X: -10, Y: 5}, B: gm.Vec{X: 10, Y: 5}},
	})

	entity := &ball{space: space}
	app.Instantiate(entity)

	var touched []*Body
	entity.body.OnContact = func(other *Body) {
		touched = append(touched, other)
	}

	for range 60 {
		app.Frame()
	}

	require.Equal(t, []*Body{floor}, touched)

	// resting on the floor
	require.InDelta(t, 4, entity.Position.Y, 0.5)
}

func TestSpaceUnloadRemovesBodies(t *testing.T) {
	app := pulse.NewApp(pulse.Options{})

	space := NewSpace(DefaultSpaceConfig)
	app.Instantiate(space)

	app.Instantiate(&ball{space: space})
	app.Instantiate(&ball{space: space})

	require.Equal(t, 2, space.Bodies())

	app.Entities.Unload(app)
	require.Equal(t, 0, space.Bodies())
}

func TestBodyRequiresCollider(t *testing.T) {
	space := NewSpace(DefaultSpaceConfig)

	require.Panics(t, func() {
		space.AddBody(nil, BodyConfig{})
	})
}
