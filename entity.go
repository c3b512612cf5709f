package pulse

import (
	"fmt"

	"github.com/frameloop/pulse/gm"
)

// EntityId is an opaque handle to an entity owned by a Registry.
// The zero value never identifies an entity.
type EntityId uint32

func (e EntityId) String() string {
	return fmt.Sprintf("Entity(%d)", uint32(e))
}

// Presentation is the opaque visual representation of an entity. The core only
// forwards lifecycle calls to it, it never inspects it.
type Presentation interface {
	SetPosition(pos gm.Vec)
	Destroy()
}

// Entity is a simulation object stepped by the frame loop. Every entity
// must embed Base, which also provides no-op implementations of all hooks.
//
// Per frame, Update is called on all entities before LateUpdate, and LateUpdate
// before Draw. Use Update to accumulate forces and LateUpdate to integrate them.
type Entity interface {
	entityBase() *Base

	// Start is called once when the entity is instantiated.
	Start(app *App)
	Update(app *App)
	LateUpdate(app *App)

	// Draw is called after the presentation was moved to the entities position.
	Draw(app *App)
}

// Destroyer can be implemented by an Entity to get notified when it is destroyed.
type Destroyer interface {
	OnDestroy(app *App)
}

// Unloader can be implemented by an Entity to get notified when it is
// removed by a bulk unload, e.g. when a new scene is loaded.
type Unloader interface {
	OnUnload(app *App)
}

// Base holds the state shared by all entities.
type Base struct {
	Position gm.Vec

	// Preserve keeps the entity alive when a scene is unloaded.
	Preserve bool

	// Presentation is an optional handle, usually created in Start.
	Presentation Presentation

	id        EntityId
	destroyed bool
}

// At returns a Base positioned at the given coordinates.
func At(x, y float64) Base {
	return Base{Position: gm.Vec{X: x, Y: y}}
}

// Id returns the handle of this entity. It is zero
// until the entity was instantiated.
func (b *Base) Id() EntityId {
	return b.id
}

// Destroyed returns true if the entity was flagged for destruction.
// It stays in its registry until the end of the frame.
func (b *Base) Destroyed() bool {
	return b.destroyed
}

func (b *Base) entityBase() *Base {
	return b
}

func (b *Base) Start(*App)      {}
func (b *Base) Update(*App)     {}
func (b *Base) LateUpdate(*App) {}
func (b *Base) Draw(*App)       {}

func (b *Base) syncPresentation() {
	if b.Presentation != nil {
		b.Presentation.SetPosition(b.Position)
	}
}

func (b *Base) removePresentation() {
	if b.Presentation == nil {
		return
	}

	b.Presentation.Destroy()
	b.Presentation = nil
}
