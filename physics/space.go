// Package physics integrates chipmunk rigid bodies with pulse entities.
//
// A Space is an entity. Instantiate it before the entities owning bodies: entities
// apply forces in Update, the space steps the simulation in its LateUpdate and
// writes the new positions back to the entities owning the bodies.
package physics

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/jakecoffman/cp/v2"
)

const bodyCollisionType cp.CollisionType = 1

type SpaceConfig struct {
	Gravity gm.Vec

	// Damping is the fraction of velocity a body keeps per second.
	Damping float64

	// Iterations of the solver per step.
	Iterations uint

	// Substeps splits each frame into multiple steps.
	Substeps uint
}

var DefaultSpaceConfig = SpaceConfig{
	Damping:    1,
	Iterations: 10,
	Substeps:   1,
}

type Space struct {
	pulse.Base

	config SpaceConfig

	space  *cp.Space
	bodies []*Body

	contacts []contact
}

type contact struct {
	a, b  *Body
	ended bool
}

func NewSpace(config SpaceConfig) *Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector(config.Gravity))
	space.SetDamping(config.Damping)
	space.Iterations = max(1, config.Iterations)

	s := &Space{
		config: config,
		space:  space,
	}

	handler := space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)

	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		s.queueContact(arb, false)
		return true
	}

	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		s.queueContact(arb, true)
	}

	return s
}

func (s *Space) queueContact(arb *cp.Arbiter, ended bool) {
	a, b := arb.Bodies()

	bodyA, okA := a.UserData.(*Body)
	bodyB, okB := b.UserData.(*Body)
	if !okA || !okB {
		return
	}

	s.contacts = append(s.contacts, contact{a: bodyA, b: bodyB, ended: ended})
}

// Bodies returns the number of bodies in the space.
func (s *Space) Bodies() int {
	return len(s.bodies)
}

// Step advances the simulation. The delta is measured in target frame intervals
// and converted to seconds using the frame rate.
func (s *Space) Step(delta, frameRate float64) {
	s.removeDetached()

	if delta <= 0 {
		return
	}

	substeps := max(1, s.config.Substeps)
	dt := delta / frameRate / float64(substeps)

	for range substeps {
		s.space.Step(dt)
	}

	for _, body := range s.bodies {
		body.syncOwner()
	}

	s.dispatchContacts()
}

func (s *Space) dispatchContacts() {
	// callbacks might remove bodies, which queues new contacts
	contacts := s.contacts
	s.contacts = nil

	for _, c := range contacts {
		c.a.notify(c.b, c.ended)
		c.b.notify(c.a, c.ended)
	}
}

// removeDetached removes all bodies owned by destroyed entities.
func (s *Space) removeDetached() {
	for idx := len(s.bodies) - 1; idx >= 0; idx-- {
		body := s.bodies[idx]
		if body.owner != nil && body.owner.Destroyed() {
			body.Remove()
		}
	}
}

func (s *Space) LateUpdate(app *pulse.App) {
	s.Step(app.Delta(), app.Clock.FrameRate())
}

func (s *Space) OnDestroy(*pulse.App) {
	s.clear()
}

func (s *Space) OnUnload(*pulse.App) {
	s.clear()
}

func (s *Space) clear() {
	for len(s.bodies) > 0 {
		s.bodies[len(s.bodies)-1].Remove()
	}
}
