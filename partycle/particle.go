// Package partycle spawns short lived particle entities.
package partycle

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
)

// DefaultDecay lets a particle live for 25 frames.
const DefaultDecay = 1.0 / 25

// Particle moves in a straight line and slows down and shrinks while its life decays.
// It destroys itself once its life reaches zero.
type Particle struct {
	pulse.Base

	// Stage to draw the particle on. May be nil.
	Stage *pulsebiten.Stage

	Velocity gm.Vec
	Speed    float64

	// Life starts at 1 and decreases by Decay every target frame interval.
	Life  float64
	Decay float64

	Radius float64
	Colors Curve[color.Color]

	node *pulsebiten.Node
}

func (p *Particle) Start(*pulse.App) {
	if p.Life == 0 {
		p.Life = 1
	}

	if p.Decay == 0 {
		p.Decay = DefaultDecay
	}

	if !p.Colors.HasValues() {
		p.Colors = StaticValueCurve(color.White)
	}

	if p.Stage != nil {
		p.node = p.Stage.Add(pulsebiten.Circle{Radius: p.Radius}, p.Colors.ValueAt(0))
		p.Presentation = p.node
	}
}

func (p *Particle) Update(app *pulse.App) {
	delta := app.Delta()

	p.Position = p.Position.Add(p.Velocity.Mul(delta))
	p.Velocity = p.Velocity.WithLength(p.Speed * max(0, p.Life))

	p.Life -= p.Decay * delta
	if p.Life > 0 {
		return
	}

	app.Destroy(p.Id())
}

func (p *Particle) Draw(*pulse.App) {
	if p.node == nil {
		return
	}

	p.node.Scale = max(0, p.Life)
	p.node.Fill = p.Colors.ValueAt(1 - p.Life)
}
