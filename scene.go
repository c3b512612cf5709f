package pulse

import (
	"go.uber.org/zap"
)

// SceneId names a scene.
type SceneId string

// Scenes holds the setup functions of all known scenes. Loading a scene
// unloads all entities that are not preserved and runs the setup of the new scene.
type Scenes struct {
	setups  map[SceneId]func(app *App)
	current SceneId
	loaded  bool
}

// Add registers a scene. Adding a scene with a known id replaces it.
func (s *Scenes) Add(id SceneId, setup func(app *App)) {
	if setup == nil {
		panic("scene: setup must not be nil")
	}

	if s.setups == nil {
		s.setups = map[SceneId]func(app *App){}
	}

	s.setups[id] = setup
}

// Load unloads the current scene and runs the setup of the given one.
// Returns false if no scene with the given id exists.
func (s *Scenes) Load(app *App, id SceneId) bool {
	setup, ok := s.setups[id]
	if !ok {
		app.Logger.Warn("Unknown scene", zap.String("scene", string(id)))
		return false
	}

	s.Unload(app)

	app.Logger.Debug("Load scene", zap.String("scene", string(id)))

	s.current = id
	s.loaded = true

	setup(app)

	return true
}

// Unload removes all entities that are not preserved.
func (s *Scenes) Unload(app *App) {
	app.Entities.Unload(app)

	s.current = ""
	s.loaded = false
}

// Current returns the id of the loaded scene.
func (s *Scenes) Current() (SceneId, bool) {
	return s.current, s.loaded
}
