package main

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/physics"
	"github.com/hajimehoshi/ebiten/v2"
)

// agent velocities are measured per target frame interval, physics
// velocities per second.
func perSecond(app *pulse.App, velocity gm.Vec) gm.Vec {
	return velocity.Mul(app.Clock.FrameRate())
}

func (d *demo) gameScene(app *pulse.App) {
	d.menu = nil

	center := d.screenCenter()

	space := physics.NewSpace(d.config.SpaceConfig())
	app.Instantiate(space)

	d.space = space
	d.addWalls(space, center.Mul(2))

	app.Instantiate(&Circle{
		Base:    pulse.Base{Position: center},
		stage:   d.host.Stage,
		scripts: d.scripts,
	})

	agent := NewAgent(d.host, center)
	app.Instantiate(agent)

	app.Instantiate(&dropper{demo: d, space: space, agent: agent})
}

// drawPhysics draws the shapes of the current physics space.
func (d *demo) drawPhysics(screen *ebiten.Image) {
	if d.space == nil || d.space.Destroyed() {
		return
	}

	d.space.DebugDraw(screen)
}

func (d *demo) addWalls(space *physics.Space, size gm.Vec) {
	corners := []gm.Vec{
		{X: 0, Y: 0},
		{X: size.X, Y: 0},
		{X: size.X, Y: size.Y},
		{X: 0, Y: size.Y},
	}

	for idx, a := range corners {
		b := corners[(idx+1)%len(corners)]

		space.AddBody(nil, physics.BodyConfig{
			Kind:       physics.Static,
			Collider:   physics.SegmentCollider{A: a, B: b, Radius: 2},
			Elasticity: 0.9,
			Friction:   0.5,
		})
	}
}

// dropper drops a ball at the agent each time B or the south gamepad button is pressed.
type dropper struct {
	pulse.Base

	demo  *demo
	space *physics.Space
	agent *Agent
}

func (d *dropper) Update(app *pulse.App) {
	if !app.Input.KeyDown("B") && !app.Input.GamepadButtonDown(0) {
		return
	}

	app.Instantiate(&Ball{
		Base:     pulse.Base{Position: d.agent.Position},
		stage:    d.demo.host.Stage,
		space:    d.space,
		velocity: perSecond(app, d.agent.Velocity),
	})
}
