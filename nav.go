package pulse

import (
	"math"
)

// RepeatGate limits how often a continuously held input fires.
// The cooldown is measured in target frame intervals and decremented by the frame delta.
type RepeatGate struct {
	// Interval is the cooldown after the gate fired
	Interval float64

	cooldown float64
}

// Update decrements the cooldown and fires if the cooldown has passed and the
// trigger condition is active. Firing resets the cooldown to Interval.
func (g *RepeatGate) Update(delta float64, active bool) bool {
	g.cooldown -= delta
	if g.cooldown > 0 || !active {
		return false
	}

	g.cooldown = g.Interval
	return true
}

// Hold sets the cooldown, e.g. to delay repeating after a discrete press.
func (g *RepeatGate) Hold(cooldown float64) {
	g.cooldown = cooldown
}

// Cooldown returns the remaining cooldown.
func (g *RepeatGate) Cooldown() float64 {
	return g.cooldown
}

// AxisLatch turns an analog axis into discrete edges. After it fired, the axis must
// be observed within the deadzone before the latch can fire again.
// A latch starts disarmed.
type AxisLatch struct {
	// Deadzone is the distance from the center an axis must return within to re-arm the latch
	Deadzone float64

	// Threshold is the distance from the center an axis must exceed to fire
	Threshold float64

	armed bool
}

// Update returns +1 or -1 if the latch fires in the direction of the axis, zero otherwise.
func (l *AxisLatch) Update(value float64) int {
	var fired int

	if l.armed {
		switch {
		case value > l.Threshold:
			fired = 1
		case value < -l.Threshold:
			fired = -1
		}

		if fired != 0 {
			l.armed = false
		}
	}

	if math.Abs(value) < l.Deadzone {
		l.armed = true
	}

	return fired
}

// Armed returns true if the latch is able to fire.
func (l *AxisLatch) Armed() bool {
	return l.armed
}

// NavBinding lists the inputs that trigger one direction of navigation.
type NavBinding struct {
	Keys    []Key
	Buttons []int
}

// NavBindings binds inputs to the directions of a Navigator.
type NavBindings struct {
	Next     NavBinding
	Previous NavBinding

	// Axis is the gamepad axis used for navigation.
	// Positive values navigate to the next item.
	Axis int
}

// DefaultNavBindings navigate using the arrow keys, the dpad
// of a standard gamepad and its left vertical stick.
var DefaultNavBindings = NavBindings{
	Next:     NavBinding{Keys: []Key{"ArrowDown"}, Buttons: []int{13}},
	Previous: NavBinding{Keys: []Key{"ArrowUp"}, Buttons: []int{12}},
	Axis:     1,
}

// NavTuning configures the timing of a Navigator.
type NavTuning struct {
	// EdgeDelay is the cooldown after a discrete press before repeating starts
	EdgeDelay float64

	// RepeatInterval is the cooldown between two repeats
	RepeatInterval float64

	Deadzone  float64
	Threshold float64
}

var DefaultNavTuning = NavTuning{
	EdgeDelay:      30,
	RepeatInterval: 6,
	Deadzone:       0.2,
	Threshold:      0.4,
}

// Navigator produces a navigation step from keys, gamepad buttons and a gamepad axis.
//
// Discrete presses and the axis latch navigate immediately. While an input is held,
// the repeat gate navigates again once its cooldown passed. The axis latch
// and the repeat gate work independently of each other.
type Navigator struct {
	Bindings  NavBindings
	EdgeDelay float64

	Gate  RepeatGate
	Latch AxisLatch
}

func NewNavigator(bindings NavBindings, tuning NavTuning) *Navigator {
	return &Navigator{
		Bindings:  bindings,
		EdgeDelay: tuning.EdgeDelay,
		Gate:      RepeatGate{Interval: tuning.RepeatInterval},
		Latch:     AxisLatch{Deadzone: tuning.Deadzone, Threshold: tuning.Threshold},
	}
}

// Update returns the navigation step of this frame:
// positive to navigate to the next item, negative for the previous one.
func (n *Navigator) Update(input *InputTracker, delta float64) int {
	var step int

	if n.Bindings.Next.pressed(input) {
		n.Gate.Hold(n.EdgeDelay)
		step += 1
	}

	if n.Bindings.Previous.pressed(input) {
		n.Gate.Hold(n.EdgeDelay)
		step -= 1
	}

	axis := input.PrimaryGamepad().Axis(n.Bindings.Axis)

	if fired := n.Latch.Update(axis); fired != 0 {
		n.Gate.Hold(n.EdgeDelay)
		step += fired
	}

	var direction int
	if n.Bindings.Next.held(input) || axis > n.Latch.Threshold {
		direction += 1
	}

	if n.Bindings.Previous.held(input) || axis < -n.Latch.Threshold {
		direction -= 1
	}

	if n.Gate.Update(delta, direction != 0) {
		step += direction
	}

	return step
}

func (b NavBinding) pressed(input *InputTracker) bool {
	for _, key := range b.Keys {
		if input.KeyDown(key) {
			return true
		}
	}

	for _, button := range b.Buttons {
		if input.GamepadButtonDown(button) {
			return true
		}
	}

	return false
}

func (b NavBinding) held(input *InputTracker) bool {
	for _, key := range b.Keys {
		if input.Key(key) {
			return true
		}
	}

	for _, button := range b.Buttons {
		if input.GamepadButton(button) {
			return true
		}
	}

	return false
}

// Selection is an index clamped to the range [0, Count).
type Selection struct {
	Index int
	Count int
}

// Move moves the index by the given step and clamps it into range.
func (s *Selection) Move(step int) {
	if s.Count <= 0 {
		s.Index = 0
		return
	}

	s.Index = max(0, min(s.Count-1, s.Index+step))
}
