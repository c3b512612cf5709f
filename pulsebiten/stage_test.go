package pulsebiten

import (
	"testing"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/stretchr/testify/require"
)

var _ pulse.Presentation = &Node{}

func TestStageOrdersByZ(t *testing.T) {
	stage := NewStage(color.Black)

	top := stage.Add(Circle{Radius: 1}, color.White)
	top.Z = 10

	bottom := stage.Add(Circle{Radius: 1}, color.White)
	bottom.Z = -1

	middle := stage.Add(Rectangle{Size: gm.VecOne}, color.White)

	require.Equal(t, []*Node{bottom, middle, top}, stage.Nodes())
}

func TestNodeDestroy(t *testing.T) {
	stage := NewStage(color.Black)

	first := stage.Add(Circle{Radius: 1}, color.White)
	second := stage.Add(Circle{Radius: 1}, color.White)

	first.Destroy()
	first.Destroy()

	require.True(t, first.Removed())
	require.Equal(t, []*Node{second}, stage.Nodes())
}

func TestNodeFollowsEntity(t *testing.T) {
	stage := NewStage(color.Black)
	app := pulse.NewApp(pulse.Options{})

	entity := &follower{Base: pulse.At(4, 2), stage: stage}
	id := app.Instantiate(entity)

	node := entity.Presentation.(*Node)

	app.Frame()
	require.Equal(t, gm.Vec{X: 4, Y: 2}, node.Position())

	entity.Position = gm.Vec{X: 8}
	app.Frame()
	require.Equal(t, gm.Vec{X: 8}, node.Position())

	app.Destroy(id)
	require.True(t, node.Removed())
	require.Equal(t, 0, stage.Len())
}

type follower struct {
	pulse.Base
	stage *Stage
}

func (f *follower) Start(*pulse.App) {
	f.Presentation = f.stage.Add(Circle{Radius: 4}, color.White)
}
