package main

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/frameloop/pulse/script"
	"go.uber.org/zap"
)

var colorCircle = color.RGB(0.4, 0.33, 1)

// Circle pulses. The pulsing is programmed in the circle.lua script.
type Circle struct {
	pulse.Base

	stage   *pulsebiten.Stage
	scripts *scripts

	scale float64

	node     *pulsebiten.Node
	sequence *pulse.Sequence
}

func (c *Circle) Start(app *pulse.App) {
	c.scale = 1

	c.node = c.stage.Add(pulsebiten.Circle{Radius: 20}, colorCircle)
	c.Presentation = c.node

	c.sequence = app.Sequencer.Create()

	err := c.scripts.Sequence(c.sequence, "circle.lua", circleScript, script.Funcs{
		"scale": func(args ...float64) float64 {
			if len(args) > 0 {
				c.scale = args[0]
			}

			return c.scale
		},
	})

	if err != nil {
		app.Logger.Error("Circle script failed", zap.Error(err))
		return
	}

	c.sequence.Start()
}

func (c *Circle) Draw(*pulse.App) {
	c.node.Scale = c.scale
}

func (c *Circle) OnUnload(*pulse.App) {
	c.sequence.Stop()
}

func (c *Circle) OnDestroy(*pulse.App) {
	c.sequence.Stop()
}
