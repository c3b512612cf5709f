package pulse

import (
	"slices"

	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/internal/set"
	"go.uber.org/zap"
)

// Key names a key of a keyboard like device, e.g. "ArrowUp" or "Enter".
type Key string

// GamepadId identifies a connected gamepad.
type GamepadId int

// Device feeds raw input into an InputTracker.
// Poll is called once per frame at the beginning of the frame.
type Device interface {
	Poll(input *InputTracker)
}

// GamepadSnapshot holds the raw state of a gamepad at one point in time.
type GamepadSnapshot struct {
	// Pressed is the digital state of each button
	Pressed []bool

	// Values is the analog value of each button in the range [0, 1]
	Values []float64

	// Axes holds the value of each axis in the range [-1, 1]
	Axes []float64
}

// InputTracker converts raw key and gamepad events into level and edge signals.
//
// Key reports whether a key is held. KeyDown is true only during the first frame
// a key is held. Edges are computed against a snapshot of the previous frame,
// which is taken in Finalize at the end of every frame.
type InputTracker struct {
	down     set.Set[Key]
	previous set.Set[Key]

	gamepads map[GamepadId]*Gamepad

	// gamepad ids in the order they were connected
	gamepadOrder []GamepadId

	devices []Device

	cursor gm.Vec

	logger *zap.Logger
}

// NewInputTracker creates a new InputTracker. A nil logger disables logging.
func NewInputTracker(logger *zap.Logger) *InputTracker {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &InputTracker{
		gamepads: map[GamepadId]*Gamepad{},
		logger:   logger,
	}
}

// AddDevice registers a device that is polled in Prepare.
func (in *InputTracker) AddDevice(device Device) {
	in.devices = append(in.devices, device)
}

// Prepare polls all devices. Must be called once at the beginning of a frame.
func (in *InputTracker) Prepare() {
	for _, device := range in.devices {
		device.Poll(in)
	}
}

// Finalize takes the snapshot edges are computed against.
// Must be called once at the end of a frame.
func (in *InputTracker) Finalize() {
	in.previous.CopyFrom(&in.down)
}

// KeyPressed records that a key went down. Repeated
// presses of a key that is already down are ignored.
func (in *InputTracker) KeyPressed(key Key) {
	in.down.Insert(key)
}

// KeyReleased records that a key went up.
func (in *InputTracker) KeyReleased(key Key) {
	in.down.Remove(key)
}

// Key returns true while the key is held down.
func (in *InputTracker) Key(key Key) bool {
	return in.down.Has(key)
}

// KeyDown returns true only in the first frame the key is held down.
func (in *InputTracker) KeyDown(key Key) bool {
	return in.down.Has(key) && !in.previous.Has(key)
}

// KeyUp returns true only in the first frame after the key was released.
func (in *InputTracker) KeyUp(key Key) bool {
	return !in.down.Has(key) && in.previous.Has(key)
}

// SetCursor records the position of the pointer.
func (in *InputTracker) SetCursor(x, y float64) {
	in.cursor = gm.Vec{X: x, Y: y}
}

// Cursor returns the most recent position of the pointer.
func (in *InputTracker) Cursor() gm.Vec {
	return in.cursor
}

// GamepadConnected registers a new gamepad. Connecting a known gamepad does nothing.
func (in *InputTracker) GamepadConnected(id GamepadId) {
	if _, ok := in.gamepads[id]; ok {
		return
	}

	in.gamepads[id] = &Gamepad{id: id, connected: true}
	in.gamepadOrder = append(in.gamepadOrder, id)

	in.logger.Debug("Gamepad connected", zap.Int("gamepad", int(id)))
}

// GamepadDisconnected removes a gamepad. Handles to the gamepad stay valid,
// but become inert and report no input anymore.
func (in *InputTracker) GamepadDisconnected(id GamepadId) {
	gamepad, ok := in.gamepads[id]
	if !ok {
		return
	}

	gamepad.disconnect()

	delete(in.gamepads, id)
	in.gamepadOrder = slices.DeleteFunc(in.gamepadOrder, func(other GamepadId) bool { return other == id })

	in.logger.Debug("Gamepad disconnected", zap.Int("gamepad", int(id)))
}

// GamepadState updates the state of a connected gamepad. Should be called at most
// once per frame and gamepad. Updates for unknown gamepads are ignored.
func (in *InputTracker) GamepadState(id GamepadId, snapshot GamepadSnapshot) {
	gamepad, ok := in.gamepads[id]
	if !ok {
		return
	}

	gamepad.update(snapshot)
}

// Gamepad returns the gamepad with the given id, or nil if it is not connected.
// All methods of a nil gamepad report no input.
func (in *InputTracker) Gamepad(id GamepadId) *Gamepad {
	return in.gamepads[id]
}

// PrimaryGamepad returns the gamepad that was connected first, or nil.
func (in *InputTracker) PrimaryGamepad() *Gamepad {
	if len(in.gamepadOrder) == 0 {
		return nil
	}

	return in.gamepads[in.gamepadOrder[0]]
}

// Gamepads returns all connected gamepads in the order they were connected.
func (in *InputTracker) Gamepads() []*Gamepad {
	gamepads := make([]*Gamepad, 0, len(in.gamepadOrder))
	for _, id := range in.gamepadOrder {
		gamepads = append(gamepads, in.gamepads[id])
	}

	return gamepads
}

// GamepadButton returns true if the button is held on any gamepad.
func (in *InputTracker) GamepadButton(button int) bool {
	for _, gamepad := range in.gamepads {
		if gamepad.Button(button) {
			return true
		}
	}

	return false
}

// GamepadButtonDown returns true if the button was pressed this frame on any gamepad.
func (in *InputTracker) GamepadButtonDown(button int) bool {
	for _, gamepad := range in.gamepads {
		if gamepad.ButtonDown(button) {
			return true
		}
	}

	return false
}

// Gamepad tracks the state of a single gamepad.
type Gamepad struct {
	id        GamepadId
	connected bool

	// number of consecutive updates a button was held
	held   []int
	values []float64
	axes   []float64
}

func (g *Gamepad) update(snapshot GamepadSnapshot) {
	if len(g.held) < len(snapshot.Pressed) {
		g.held = append(g.held, make([]int, len(snapshot.Pressed)-len(g.held))...)
	}

	for idx := range g.held {
		if idx < len(snapshot.Pressed) && snapshot.Pressed[idx] {
			g.held[idx] += 1
		} else {
			g.held[idx] = 0
		}
	}

	g.values = append(g.values[:0], snapshot.Values...)
	g.axes = append(g.axes[:0], snapshot.Axes...)
}

func (g *Gamepad) disconnect() {
	g.connected = false
	g.held = nil
	g.values = nil
	g.axes = nil
}

// Id returns the id of this gamepad.
func (g *Gamepad) Id() GamepadId {
	if g == nil {
		return -1
	}

	return g.id
}

// Connected returns false once the gamepad has been disconnected.
func (g *Gamepad) Connected() bool {
	return g != nil && g.connected
}

// Button returns true while the button is held.
func (g *Gamepad) Button(button int) bool {
	return g.HeldFrames(button) > 0
}

// ButtonDown returns true in the first frame the button is held.
func (g *Gamepad) ButtonDown(button int) bool {
	return g.HeldFrames(button) == 1
}

// HeldFrames returns the number of frames the button has been held.
func (g *Gamepad) HeldFrames(button int) int {
	if !g.Connected() || button < 0 || button >= len(g.held) {
		return 0
	}

	return g.held[button]
}

// ButtonValue returns the analog value of a button.
func (g *Gamepad) ButtonValue(button int) float64 {
	if !g.Connected() || button < 0 || button >= len(g.values) {
		return 0
	}

	return g.values[button]
}

// Axis returns the value of an axis.
func (g *Gamepad) Axis(axis int) float64 {
	if !g.Connected() || axis < 0 || axis >= len(g.axes) {
		return 0
	}

	return g.axes[axis]
}
