package pulse

// Phase identifies a step of the frame loop. Phases run in the order they are declared.
type Phase uint8

const (
	// First advances the clock and polls the input devices.
	First Phase = iota

	// PreUpdate advances task sequences and timers.
	PreUpdate

	// Update calls the Update hook of all entities.
	Update

	// PostUpdate calls the LateUpdate hook of all entities.
	PostUpdate

	// Render syncs presentations and calls the Draw hook of all entities.
	Render

	// Last runs before entities flagged for destruction are removed
	// and the input snapshot for the next frame is taken.
	Last

	phaseCount
)

// Phases lists all phases in execution order.
var Phases = [phaseCount]Phase{First, PreUpdate, Update, PostUpdate, Render, Last}

var phaseNames = [phaseCount]string{
	First:      "First",
	PreUpdate:  "PreUpdate",
	Update:     "Update",
	PostUpdate: "PostUpdate",
	Render:     "Render",
	Last:       "Last",
}

func (p Phase) String() string {
	if p >= phaseCount {
		return "Unknown"
	}

	return phaseNames[p]
}

// System is a function that runs once per frame in a phase.
type System func(app *App)
