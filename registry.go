package pulse

import (
	"fmt"
	"iter"
)

// Registry owns all live entities. Entities are only ever referenced by their EntityId.
//
// Destroying an entity never removes it directly. The entity is flagged instead
// and physically removed in Sweep, which runs at the end of each frame.
type Registry struct {
	entities []Entity
	byId     map[EntityId]Entity
	lastId   EntityId
}

func NewRegistry() *Registry {
	return &Registry{byId: map[EntityId]Entity{}}
}

// Instantiate adds the entity to the registry and calls its Start hook.
func (r *Registry) Instantiate(app *App, entity Entity) EntityId {
	base := entity.entityBase()

	if base.id != 0 {
		panic(fmt.Sprintf("entity %s was already instantiated", base.id))
	}

	r.lastId += 1

	base.id = r.lastId
	base.destroyed = false

	r.entities = append(r.entities, entity)
	r.byId[base.id] = entity

	entity.Start(app)

	return base.id
}

// Get returns the entity with the given id, if it is still stored in the registry.
func (r *Registry) Get(id EntityId) (Entity, bool) {
	entity, ok := r.byId[id]
	return entity, ok
}

// Alive returns true if the entity exists and was not flagged for destruction.
func (r *Registry) Alive(id EntityId) bool {
	entity, ok := r.byId[id]
	return ok && !entity.entityBase().destroyed
}

// Len returns the number of stored entities, including the ones flagged for destruction.
func (r *Registry) Len() int {
	return len(r.entities)
}

// All iterates over all stored entities in the order they were instantiated.
func (r *Registry) All() iter.Seq2[EntityId, Entity] {
	return func(yield func(EntityId, Entity) bool) {
		for _, entity := range r.entities {
			if !yield(entity.entityBase().id, entity) {
				return
			}
		}
	}
}

// Destroy flags the entity for destruction, calls its OnDestroy hook and tears down
// its presentation. Destroying an unknown or already destroyed entity does nothing.
func (r *Registry) Destroy(app *App, id EntityId) {
	entity, ok := r.byId[id]
	if !ok {
		return
	}

	base := entity.entityBase()
	if base.destroyed {
		return
	}

	base.destroyed = true

	if destroyer, ok := entity.(Destroyer); ok {
		destroyer.OnDestroy(app)
	}

	base.removePresentation()
}

// Unload flags all entities that are not preserved, calls their OnUnload hook
// and tears down their presentation.
func (r *Registry) Unload(app *App) {
	r.unload(app, false)
}

// UnloadAll works like Unload, but ignores the Preserve flag.
func (r *Registry) UnloadAll(app *App) {
	r.unload(app, true)
}

func (r *Registry) unload(app *App, all bool) {
	for idx := len(r.entities) - 1; idx >= 0; idx-- {
		entity := r.entities[idx]

		base := entity.entityBase()
		if base.destroyed || (base.Preserve && !all) {
			continue
		}

		base.destroyed = true

		if unloader, ok := entity.(Unloader); ok {
			unloader.OnUnload(app)
		}

		base.removePresentation()
	}
}

// Update calls the Update hook of every entity not flagged for destruction.
func (r *Registry) Update(app *App) {
	r.each(func(entity Entity) {
		entity.Update(app)
	})
}

// LateUpdate calls the LateUpdate hook of every entity not flagged for destruction.
func (r *Registry) LateUpdate(app *App) {
	r.each(func(entity Entity) {
		entity.LateUpdate(app)
	})
}

// Draw moves the presentation of every entity not flagged for destruction
// to the entities position and calls its Draw hook.
func (r *Registry) Draw(app *App) {
	r.each(func(entity Entity) {
		entity.entityBase().syncPresentation()
		entity.Draw(app)
	})
}

// Sweep removes all entities flagged for destruction.
func (r *Registry) Sweep() {
	for idx := len(r.entities) - 1; idx >= 0; idx-- {
		base := r.entities[idx].entityBase()
		if !base.destroyed {
			continue
		}

		delete(r.byId, base.id)

		// the entity could be instantiated again
		base.id = 0

		r.entities = append(r.entities[:idx], r.entities[idx+1:]...)
	}
}

// each visits the entities stored when the iteration starts. Entities
// instantiated while iterating are visited in the next pass.
func (r *Registry) each(fn func(entity Entity)) {
	count := len(r.entities)

	for idx := 0; idx < count && idx < len(r.entities); idx++ {
		entity := r.entities[idx]
		if entity.entityBase().destroyed {
			continue
		}

		fn(entity)
	}
}
