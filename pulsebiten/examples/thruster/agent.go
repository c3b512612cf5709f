package main

import (
	"math"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/partycle"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
)

var (
	colorAgent    = color.RGB(1, 0.8, 0)
	colorExhaust  = color.RGB(1, 0, 0.8)
	exhaustColors = partycle.EquidistantCurve(partycle.LerpColor, colorExhaust, colorExhaust.WithAlpha(0))
)

// Agent is a ship with two thrusters. Each thruster pushes the ship forward
// and rotates it away from its side.
type Agent struct {
	pulse.Base

	host *pulsebiten.Host

	Velocity        gm.Vec
	acceleration    gm.Vec
	Angle           gm.Rad
	angularVelocity float64
	angularAccel    float64

	leftThrust  float64
	rightThrust float64

	left, right partycle.Emitter

	node *pulsebiten.Node
}

const (
	agentRadius          = 50.0
	agentForce           = 0.4
	agentAngularForce    = 0.05
	agentFriction        = 0.9
	agentAngularFriction = 0.94
	agentGravity         = 0.3
	agentMaxSpeed        = 10.0
	agentMaxAngularSpeed = 0.015

	// thrust below this value does not produce exhaust
	exhaustThreshold = 0.09
)

func NewAgent(host *pulsebiten.Host, pos gm.Vec) *Agent {
	exhaust := partycle.Emitter{
		Burst: partycle.Burst{
			Stage:  host.Stage,
			Speed:  1,
			Radius: 10,
			Colors: exhaustColors,
		},
		ParticlesPerFrame: 1,
	}

	return &Agent{
		Base:  pulse.Base{Position: pos},
		host:  host,
		Angle: -math.Pi / 2,
		left:  exhaust,
		right: exhaust,
	}
}

func (a *Agent) Start(*pulse.App) {
	thruster := agentRadius - 10

	a.node = a.host.Stage.Add(pulsebiten.Compound{
		pulsebiten.Circle{Radius: 16},
		pulsebiten.Offset{Shape: pulsebiten.Circle{Radius: 10}, By: gm.Vec{X: thruster}},
		pulsebiten.Offset{Shape: pulsebiten.Circle{Radius: 10}, By: gm.Vec{X: -thruster}},
	}, colorAgent)

	a.node.Z = 1

	a.Presentation = a.node
}

func (a *Agent) addForce(force gm.Vec) {
	a.acceleration = a.acceleration.Add(force)
}

func (a *Agent) Update(app *pulse.App) {
	a.addForce(gm.Vec{Y: agentGravity})

	gamepad := app.Input.PrimaryGamepad()
	if gamepad.Connected() {
		a.leftThrust = gamepad.ButtonValue(6)
		a.rightThrust = gamepad.ButtonValue(7)
	} else {
		a.leftThrust = keyValue(app, "ArrowLeft")
		a.rightThrust = keyValue(app, "ArrowRight")
	}

	force := (a.leftThrust + a.rightThrust) * agentForce
	a.addForce(gm.VecFromAngle(a.Angle, force))

	side := gm.VecFromAngle(a.Angle+math.Pi/2, agentRadius-10)
	a.exhaust(app, &a.right, a.rightThrust, a.Position.Add(side))
	a.exhaust(app, &a.left, a.leftThrust, a.Position.Sub(side))

	a.angularAccel += a.leftThrust * agentAngularForce
	a.angularAccel -= a.rightThrust * agentAngularForce
}

func (a *Agent) exhaust(app *pulse.App, emitter *partycle.Emitter, thrust float64, pos gm.Vec) {
	if thrust <= exhaustThreshold {
		emitter.Reset()
		return
	}

	emitter.Update(app, pos)
}

func (a *Agent) LateUpdate(app *pulse.App) {
	delta := app.Delta()

	a.Velocity = a.Velocity.Add(a.acceleration.Mul(delta))
	a.Position = a.Position.Add(a.Velocity.Mul(delta))

	a.Velocity = a.Velocity.ClampLength(agentMaxSpeed).Mul(agentFriction)

	a.angularVelocity += a.angularAccel * delta
	a.Angle = (a.Angle + gm.Rad(a.angularVelocity*delta)).Normalized()

	a.acceleration = gm.VecZero
	a.angularAccel = 0

	a.angularVelocity = math.Copysign(min(math.Abs(a.angularVelocity), agentMaxAngularSpeed), a.angularVelocity)
	a.angularVelocity *= agentAngularFriction * delta

	a.wrap()
}

// wrap moves the agent to the other side of the screen once it leaves the screen.
func (a *Agent) wrap() {
	size := a.host.ScreenSize()
	if size == gm.VecZero {
		return
	}

	switch {
	case a.Position.X < 0:
		a.Position.X = size.X
	case a.Position.X > size.X:
		a.Position.X = 0
	}

	switch {
	case a.Position.Y < 0:
		a.Position.Y = size.Y
	case a.Position.Y > size.Y:
		a.Position.Y = 0
	}
}

func (a *Agent) Draw(*pulse.App) {
	a.node.Angle = a.Angle + math.Pi/2
}

func keyValue(app *pulse.App, key pulse.Key) float64 {
	if app.Input.Key(key) {
		return 1
	}

	return 0
}
