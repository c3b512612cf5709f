package main

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	colorButton   = color.RGB(0.25, 0.15, 0.35)
	colorSelected = color.RGB(0.55, 0.3, 0.75)
)

var buttonSize = gm.Vec{X: 200, Y: 40}

type menuItem struct {
	label  string
	action func(app *pulse.App)
}

type menu struct {
	pulse.Base

	stage *pulsebiten.Stage
	nav   *pulse.Navigator

	items     []menuItem
	selection pulse.Selection

	nodes []*pulsebiten.Node
}

func (d *demo) titleScene(app *pulse.App) {
	d.menu = &menu{
		Base:  pulse.Base{Position: d.screenCenter()},
		stage: d.host.Stage,
		nav:   d.nav,
		items: []menuItem{
			{label: "Start", action: func(app *pulse.App) { app.LoadScene(SceneGame) }},
			{label: "Quit", action: func(app *pulse.App) { app.Exit(nil) }},
		},
	}

	app.Instantiate(d.menu)
}

func (m *menu) Start(*pulse.App) {
	m.selection = pulse.Selection{Count: len(m.items)}

	for range m.items {
		m.nodes = append(m.nodes, m.stage.Add(pulsebiten.Rectangle{Size: buttonSize}, colorButton))
	}
}

func (m *menu) itemPosition(idx int) gm.Vec {
	offset := float64(idx) - float64(len(m.items)-1)/2
	return m.Position.Add(gm.Vec{Y: offset * (buttonSize.Y + 16)})
}

func (m *menu) Update(app *pulse.App) {
	m.selection.Move(m.nav.Update(app.Input, app.Delta()))

	activate := app.Input.KeyDown("Enter") ||
		app.Input.KeyDown("Space") ||
		app.Input.GamepadButtonDown(0)

	if activate && len(m.items) > 0 {
		m.items[m.selection.Index].action(app)
	}
}

func (m *menu) Draw(*pulse.App) {
	for idx, node := range m.nodes {
		node.SetPosition(m.itemPosition(idx))

		node.Fill = colorButton
		if idx == m.selection.Index {
			node.Fill = colorSelected
		}
	}
}

func (m *menu) OnUnload(*pulse.App) {
	m.removeNodes()
}

func (m *menu) OnDestroy(*pulse.App) {
	m.removeNodes()
}

func (m *menu) removeNodes() {
	for _, node := range m.nodes {
		node.Destroy()
	}

	m.nodes = nil
}

// drawLabels prints the labels of the menu on top of the stage.
func (d *demo) drawLabels(screen *ebiten.Image) {
	m := d.menu
	if m == nil || m.Destroyed() {
		return
	}

	for idx, item := range m.items {
		pos := m.itemPosition(idx)
		ebitenutil.DebugPrintAt(screen, item.label, int(pos.X)-3*len(item.label), int(pos.Y)-8)
	}
}

func (d *demo) screenCenter() gm.Vec {
	size := d.host.ScreenSize()
	if size == gm.VecZero {
		size = gm.Vec{X: float64(d.config.Window.Width), Y: float64(d.config.Window.Height)}
	}

	return size.Mul(0.5)
}
