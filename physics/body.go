package physics

import (
	"math"
	"slices"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/jakecoffman/cp/v2"
)

type BodyKind uint8

const (
	Dynamic BodyKind = iota
	Static
	Kinematic
)

// Collider describes the shape of a body around its center.
type Collider interface {
	moment(mass float64) float64
	makeShape(body *cp.Body) *cp.Shape
}

type CircleCollider struct {
	Radius float64
}

func (c CircleCollider) moment(mass float64) float64 {
	return cp.MomentForCircle(mass, 0, c.Radius, cp.Vector{})
}

func (c CircleCollider) makeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, c.Radius, cp.Vector{})
}

type BoxCollider struct {
	Size gm.Vec
}

func (c BoxCollider) moment(mass float64) float64 {
	return cp.MomentForBox(mass, c.Size.X, c.Size.Y)
}

func (c BoxCollider) makeShape(body *cp.Body) *cp.Shape {
	return cp.NewBox(body, c.Size.X, c.Size.Y, 0)
}

// SegmentCollider is usually used for static walls.
type SegmentCollider struct {
	A, B   gm.Vec
	Radius float64
}

func (c SegmentCollider) moment(mass float64) float64 {
	return cp.MomentForSegment(mass, cp.Vector(c.A), cp.Vector(c.B), c.Radius)
}

func (c SegmentCollider) makeShape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, cp.Vector(c.A), cp.Vector(c.B), c.Radius)
}

type BodyConfig struct {
	Kind     BodyKind
	Collider Collider

	// Mass of a dynamic body. Defaults to 1.
	Mass float64

	Elasticity float64
	Friction   float64

	// FixedRotation prevents the body from rotating.
	FixedRotation bool
}

// Body is a rigid body in a Space. If the body has an owner, the position of
// the owner is updated after each step.
type Body struct {
	// OnContact is called after a step for each body this body started touching.
	OnContact func(other *Body)

	// OnSeparate is called after a step for each body this body stopped touching.
	OnSeparate func(other *Body)

	space *Space
	owner *pulse.Base

	body  *cp.Body
	shape *cp.Shape
}

// AddBody creates a new body at the position of its owner.
// The body is removed once the owner is destroyed. Owner may be nil.
func (s *Space) AddBody(owner *pulse.Base, config BodyConfig) *Body {
	if config.Collider == nil {
		panic("physics: body requires a collider")
	}

	var body *cp.Body

	switch config.Kind {
	case Static:
		body = cp.NewStaticBody()

	case Kinematic:
		body = cp.NewKinematicBody()

	default:
		mass := config.Mass
		if mass <= 0 {
			mass = 1
		}

		moment := config.Collider.moment(mass)
		if config.FixedRotation {
			moment = math.Inf(1)
		}

		body = cp.NewBody(mass, moment)
	}

	b := &Body{space: s, owner: owner}

	body.UserData = b

	if owner != nil {
		body.SetPosition(cp.Vector(owner.Position))
	}

	shape := config.Collider.makeShape(body)
	shape.SetElasticity(config.Elasticity)
	shape.SetFriction(config.Friction)
	shape.SetCollisionType(bodyCollisionType)

	b.body = s.space.AddBody(body)
	b.shape = s.space.AddShape(shape)

	s.bodies = append(s.bodies, b)

	return b
}

// Remove removes the body from its space. Removing a body twice does nothing.
func (b *Body) Remove() {
	if b.space == nil {
		return
	}

	b.space.space.RemoveShape(b.shape)
	b.space.space.RemoveBody(b.body)

	b.space.bodies = slices.DeleteFunc(b.space.bodies, func(other *Body) bool { return other == b })
	b.space = nil
}

// Removed returns true after the body was removed from its space.
func (b *Body) Removed() bool {
	return b.space == nil
}

func (b *Body) Owner() *pulse.Base {
	return b.owner
}

func (b *Body) Position() gm.Vec {
	return gm.Vec(b.body.Position())
}

func (b *Body) SetPosition(pos gm.Vec) {
	b.body.SetPosition(cp.Vector(pos))
}

func (b *Body) Angle() gm.Rad {
	return gm.Rad(b.body.Angle())
}

func (b *Body) SetAngle(angle gm.Rad) {
	b.body.SetAngle(float64(angle))
}

func (b *Body) Velocity() gm.Vec {
	return gm.Vec(b.body.Velocity())
}

func (b *Body) SetVelocity(velocity gm.Vec) {
	b.body.SetVelocityVector(cp.Vector(velocity))
}

// ApplyForce applies a force to the center of the body until the next step.
func (b *Body) ApplyForce(force gm.Vec) {
	b.body.ApplyForceAtWorldPoint(cp.Vector(force), b.body.Position())
}

// ApplyImpulse changes the velocity of the body immediately.
func (b *Body) ApplyImpulse(impulse gm.Vec) {
	b.body.ApplyImpulseAtWorldPoint(cp.Vector(impulse), b.body.Position())
}

func (b *Body) syncOwner() {
	if b.owner != nil && b.body.GetType() != cp.BODY_STATIC {
		b.owner.Position = b.Position()
	}
}

func (b *Body) notify(other *Body, ended bool) {
	switch {
	case ended && b.OnSeparate != nil:
		b.OnSeparate(other)

	case !ended && b.OnContact != nil:
		b.OnContact(other)
	}
}
