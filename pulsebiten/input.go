package pulsebiten

import (
	"slices"
	"time"

	"github.com/frameloop/pulse"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyOf returns the name of an ebiten key as used by the pulse.InputTracker,
// e.g. "ArrowUp", "Enter" or "A".
func KeyOf(key ebiten.Key) pulse.Key {
	return pulse.Key(key.String())
}

// Keyboard feeds the keyboard and the mouse cursor into an InputTracker.
type Keyboard struct {
	pressed  []ebiten.Key
	previous []ebiten.Key
}

func (k *Keyboard) Poll(input *pulse.InputTracker) {
	k.previous, k.pressed = k.pressed, inpututil.AppendPressedKeys(k.previous[:0])

	diffKeys(k.previous, k.pressed, input)

	x, y := ebiten.CursorPosition()
	input.SetCursor(float64(x), float64(y))
}

func diffKeys(previous, pressed []ebiten.Key, input *pulse.InputTracker) {
	for _, key := range previous {
		if !slices.Contains(pressed, key) {
			input.KeyReleased(KeyOf(key))
		}
	}

	for _, key := range pressed {
		input.KeyPressed(KeyOf(key))
	}
}

// Gamepads feeds all connected gamepads into an InputTracker. Gamepads with
// a standard layout report buttons and axes in the standard order, others report
// their raw buttons and axes.
type Gamepads struct {
	// Rumble is the duration a gamepad vibrates after it was connected.
	Rumble time.Duration

	connected []ebiten.GamepadID
	ids       []ebiten.GamepadID

	snapshot pulse.GamepadSnapshot
}

// Poll compares the connected gamepads against the previous poll. Several
// ticks can pass between two frames, so the edges reported by inpututil
// could be missed here.
func (g *Gamepads) Poll(input *pulse.InputTracker) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	g.connected = diffGamepads(g.connected, g.ids,
		func(id ebiten.GamepadID) {
			input.GamepadConnected(pulse.GamepadId(id))
			g.rumble(id)
		},
		func(id ebiten.GamepadID) {
			input.GamepadDisconnected(pulse.GamepadId(id))
		},
	)

	for _, id := range g.connected {
		g.read(id)
		input.GamepadState(pulse.GamepadId(id), g.snapshot)
	}
}

func (g *Gamepads) rumble(id ebiten.GamepadID) {
	if g.Rumble <= 0 {
		return
	}

	ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
		Duration:        g.Rumble,
		StrongMagnitude: 0.5,
		WeakMagnitude:   0.5,
	})
}

// diffGamepads reports gamepads missing in current as disconnected and new ones as
// connected. It returns the updated list of connected gamepads, in connection order.
func diffGamepads(
	connected, current []ebiten.GamepadID,
	connect, disconnect func(id ebiten.GamepadID),
) []ebiten.GamepadID {
	connected = slices.DeleteFunc(connected, func(id ebiten.GamepadID) bool {
		if slices.Contains(current, id) {
			return false
		}

		disconnect(id)
		return true
	})

	for _, id := range current {
		if !slices.Contains(connected, id) {
			connected = append(connected, id)
			connect(id)
		}
	}

	return connected
}

func (g *Gamepads) read(id ebiten.GamepadID) {
	s := &g.snapshot
	s.Pressed = s.Pressed[:0]
	s.Values = s.Values[:0]
	s.Axes = s.Axes[:0]

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		for button := range ebiten.StandardGamepadButtonMax + 1 {
			s.Pressed = append(s.Pressed, ebiten.IsStandardGamepadButtonPressed(id, button))
			s.Values = append(s.Values, ebiten.StandardGamepadButtonValue(id, button))
		}

		for axis := range ebiten.StandardGamepadAxisMax + 1 {
			s.Axes = append(s.Axes, ebiten.StandardGamepadAxisValue(id, axis))
		}

		return
	}

	for button := range ebiten.GamepadButton(ebiten.GamepadButtonCount(id)) {
		pressed := ebiten.IsGamepadButtonPressed(id, button)
		s.Pressed = append(s.Pressed, pressed)
		s.Values = append(s.Values, boolToValue(pressed))
	}

	for axis := range ebiten.GamepadAxisType(ebiten.GamepadAxisCount(id)) {
		s.Axes = append(s.Axes, ebiten.GamepadAxisValue(id, axis))
	}
}

func boolToValue(value bool) float64 {
	if value {
		return 1
	}

	return 0
}
