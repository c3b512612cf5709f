package main

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/partycle"
	"github.com/frameloop/pulse/physics"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
)

var colorBall = color.RGB(0.3, 0.9, 0.6)

const ballRadius = 12

// ballLifetime in target frame intervals
const ballLifetime = 5 * 60

// Ball is dropped by the agent and bounces around. It sparks when it hits something.
type Ball struct {
	pulse.Base

	stage    *pulsebiten.Stage
	space    *physics.Space
	velocity gm.Vec

	body *physics.Body
}

func (b *Ball) Start(app *pulse.App) {
	b.Presentation = b.stage.Add(pulsebiten.Circle{Radius: ballRadius}, colorBall)

	b.body = b.space.AddBody(&b.Base, physics.BodyConfig{
		Collider:   physics.CircleCollider{Radius: ballRadius},
		Mass:       1,
		Elasticity: 0.8,
		Friction:   0.4,
	})

	b.body.SetVelocity(b.velocity)

	b.body.OnContact = func(other *physics.Body) {
		sparks := partycle.Burst{
			Stage:       b.stage,
			Count:       6,
			Speed:       3,
			SpeedJitter: 1,
			Radius:      3,
			Colors:      partycle.StaticValueCurve(colorBall),
		}

		sparks.Emit(app, b.Position)
	}

	pulse.DestroyAfter(app, b.Id(), ballLifetime)
}

func (b *Ball) Draw(*pulse.App) {
	node := b.Presentation.(*pulsebiten.Node)
	node.Angle = b.body.Angle()
}
