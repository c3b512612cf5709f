package physics

import (
	"math"

	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
)

// DebugDraw draws the outlines of all shapes in the space.
func (s *Space) DebugDraw(screen *ebiten.Image) {
	cp.DrawSpace(s.space, &debugImage{Image: screen})
}

type debugImage struct {
	Image *ebiten.Image
	path  vector.Path
}

func colorOf(c cp.FColor) color.Color {
	return color.RGBA(c.R, c.G, c.B, c.A)
}

func (d *debugImage) stroke(outline cp.FColor) {
	vector.StrokePath(d.Image, &d.path, colorOf(outline), true, &vector.StrokeOptions{Width: 1})
	d.path.Reset()
}

func (d *debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.path.MoveTo(float32(pos.X+radius), float32(pos.Y))
	d.path.Arc(float32(pos.X), float32(pos.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)

	// indicate the rotation of the body
	d.path.MoveTo(float32(pos.X), float32(pos.Y))
	d.path.LineTo(float32(pos.X+math.Cos(angle)*radius), float32(pos.Y+math.Sin(angle)*radius))

	d.stroke(outline)
}

func (d *debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.path.MoveTo(float32(a.X), float32(a.Y))
	d.path.LineTo(float32(b.X), float32(b.Y))
	d.stroke(fill)
}

func (d *debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.path.MoveTo(float32(a.X), float32(a.Y))
	d.path.LineTo(float32(b.X), float32(b.Y))

	vector.StrokePath(d.Image, &d.path, colorOf(outline), true, &vector.StrokeOptions{
		Width:   float32(max(1, 2*radius)),
		LineCap: vector.LineCapRound,
	})

	d.path.Reset()
}

func (d *debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	d.path.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, vert := range verts[1:count] {
		d.path.LineTo(float32(vert.X), float32(vert.Y))
	}

	d.path.Close()
	d.stroke(outline)
}

func (d *debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d *debugImage) Flags() uint {
	return 0
}

func (d *debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d *debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{G: 1, A: 1}
}

func (d *debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d *debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d *debugImage) Data() interface{} {
	return nil
}
