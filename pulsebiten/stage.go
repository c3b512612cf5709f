package pulsebiten

import (
	"math"
	"slices"

	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shape describes the geometry of a Node around its origin.
type Shape interface {
	appendTo(path *vector.Path)
}

type Circle struct {
	Radius float64
}

func (c Circle) appendTo(path *vector.Path) {
	path.MoveTo(float32(c.Radius), 0)
	path.Arc(0, 0, float32(c.Radius), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
}

// Rectangle is centered on the origin of its node.
type Rectangle struct {
	Size gm.Vec
}

func (r Rectangle) appendTo(path *vector.Path) {
	w, h := float32(r.Size.X/2), float32(r.Size.Y/2)

	path.MoveTo(-w, -h)
	path.LineTo(w, -h)
	path.LineTo(w, h)
	path.LineTo(-w, h)
	path.Close()
}

// Polygon is a closed path through the given points.
type Polygon struct {
	Points []gm.Vec
}

func (p Polygon) appendTo(path *vector.Path) {
	if len(p.Points) < 3 {
		return
	}

	path.MoveTo(float32(p.Points[0].X), float32(p.Points[0].Y))

	for _, point := range p.Points[1:] {
		path.LineTo(float32(point.X), float32(point.Y))
	}

	path.Close()
}

// Offset moves a shape away from the origin of its node.
type Offset struct {
	Shape Shape
	By    gm.Vec
}

func (o Offset) appendTo(path *vector.Path) {
	var local vector.Path
	o.Shape.appendTo(&local)

	var g ebiten.GeoM
	g.Translate(o.By.X, o.By.Y)

	path.AddPath(&local, &vector.AddPathOptions{GeoM: g})
}

// Compound combines multiple shapes into one.
type Compound []Shape

func (c Compound) appendTo(path *vector.Path) {
	for _, shape := range c {
		shape.appendTo(path)
	}
}

// Node is a filled shape on a Stage. It implements pulse.Presentation,
// assign it to the Presentation field of an entity to have it follow the entity.
type Node struct {
	Shape Shape
	Fill  color.Color

	Angle gm.Rad
	Scale float64

	// Z orders the nodes of a stage. Nodes with a higher Z are drawn on top.
	Z int

	stage    *Stage
	position gm.Vec
	removed  bool
}

func (n *Node) SetPosition(pos gm.Vec) {
	n.position = pos
}

func (n *Node) Position() gm.Vec {
	return n.position
}

// Destroy removes the node from its stage. Destroying a node twice does nothing.
func (n *Node) Destroy() {
	if n.removed {
		return
	}

	n.removed = true
	n.stage.dirty = true
}

func (n *Node) Removed() bool {
	return n.removed
}

func (n *Node) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(n.Scale, n.Scale)
	g.Rotate(float64(n.Angle))
	g.Translate(n.position.X, n.position.Y)
	return g
}

// Stage is a flat list of nodes drawn on top of a background color.
type Stage struct {
	Background color.Color

	nodes []*Node
	dirty bool

	local vector.Path
	path  vector.Path
}

func NewStage(background color.Color) *Stage {
	return &Stage{Background: background}
}

// Add creates a new node at the origin.
func (s *Stage) Add(shape Shape, fill color.Color) *Node {
	node := &Node{
		Shape: shape,
		Fill:  fill,
		Scale: 1,
		stage: s,
	}

	s.nodes = append(s.nodes, node)
	s.dirty = true

	return node
}

// Nodes returns the nodes in drawing order.
func (s *Stage) Nodes() []*Node {
	s.compact()
	return s.nodes
}

func (s *Stage) Len() int {
	return len(s.Nodes())
}

func (s *Stage) compact() {
	if s.dirty {
		s.nodes = slices.DeleteFunc(s.nodes, func(node *Node) bool { return node.removed })
		s.dirty = false
	}

	// Z might change at any time
	slices.SortStableFunc(s.nodes, func(a, b *Node) int { return a.Z - b.Z })
}

// Draw fills the screen with the background color and draws all nodes.
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(s.Background)

	for _, node := range s.Nodes() {
		if node.Shape == nil || node.Fill.A <= 0 {
			continue
		}

		s.local.Reset()
		node.Shape.appendTo(&s.local)

		s.path.Reset()
		s.path.AddPath(&s.local, &vector.AddPathOptions{GeoM: node.geoM()})

		vector.FillPath(screen, &s.path, node.Fill, true, vector.FillRuleNonZero)
	}
}
