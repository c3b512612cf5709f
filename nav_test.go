package pulse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepeatGate(t *testing.T) {
	gate := RepeatGate{Interval: 3}

	require.True(t, gate.Update(1, true))

	// cooldown of 3, decremented by the delta
	require.False(t, gate.Update(1, true))
	require.False(t, gate.Update(1, true))
	require.True(t, gate.Update(1, true))

	// an inactive gate does not fire, but the cooldown passes
	require.False(t, gate.Update(5, false))
	require.True(t, gate.Update(0, true))

	gate.Hold(10)
	require.False(t, gate.Update(9, true))
	require.True(t, gate.Update(1, true))
}

func TestAxisLatch(t *testing.T) {
	latch := AxisLatch{Deadzone: 0.2, Threshold: 0.4}

	// starts disarmed
	require.False(t, latch.Armed())
	require.Equal(t, 0, latch.Update(0.9))

	require.Equal(t, 0, latch.Update(0.0))
	require.True(t, latch.Armed())

	require.Equal(t, 1, latch.Update(0.9))

	// a sustained deflection does not fire again
	for range 10 {
		require.Equal(t, 0, latch.Update(0.9))
	}

	// between deadzone and threshold does not re-arm
	require.Equal(t, 0, latch.Update(0.3))
	require.Equal(t, 0, latch.Update(-0.9))

	require.Equal(t, 0, latch.Update(0.1))
	require.Equal(t, -1, latch.Update(-0.9))
}

func navFrame(in *InputTracker, nav *Navigator, delta float64) int {
	in.Prepare()
	step := nav.Update(in, delta)
	in.Finalize()
	return step
}

func TestNavigatorKeyEdgeAndRepeat(t *testing.T) {
	in := NewInputTracker(nil)
	nav := NewNavigator(DefaultNavBindings, NavTuning{
		EdgeDelay:      5,
		RepeatInterval: 2,
		Deadzone:       0.2,
		Threshold:      0.4,
	})

	in.KeyPressed("ArrowDown")

	var steps []int
	for range 10 {
		steps = append(steps, navFrame(in, nav, 1))
	}

	// edge, wait for the edge delay, then repeat every other frame
	require.Equal(t, []int{1, 0, 0, 0, 1, 0, 1, 0, 1, 0}, steps)

	in.KeyReleased("ArrowDown")
	require.Equal(t, 0, navFrame(in, nav, 1))

	in.KeyPressed("ArrowUp")
	require.Equal(t, -1, navFrame(in, nav, 1))
}

func TestNavigatorAxis(t *testing.T) {
	in := NewInputTracker(nil)
	in.GamepadConnected(0)

	nav := NewNavigator(DefaultNavBindings, NavTuning{
		EdgeDelay:      5,
		RepeatInterval: 2,
		Deadzone:       0.2,
		Threshold:      0.4,
	})

	axis := func(value float64) {
		in.GamepadState(0, GamepadSnapshot{Axes: []float64{0, value}})
	}

	// arm the latch by observing the stick at rest
	axis(0)
	require.Equal(t, 0, navFrame(in, nav, 1))

	axis(0.9)
	require.Equal(t, 1, navFrame(in, nav, 1))

	// the latch stays disarmed while the stick is deflected,
	// the repeat gate fires once its cooldown passed
	var steps []int
	for range 6 {
		steps = append(steps, navFrame(in, nav, 1))
	}

	require.Equal(t, []int{0, 0, 0, 1, 0, 1}, steps)

	// back to rest and up again fires immediately
	axis(0)
	require.Equal(t, 0, navFrame(in, nav, 1))

	axis(-0.9)
	require.Equal(t, -1, navFrame(in, nav, 1))
}

func TestNavigatorGamepadButtons(t *testing.T) {
	in := NewInputTracker(nil)
	in.GamepadConnected(0)

	nav := NewNavigator(DefaultNavBindings, DefaultNavTuning)

	pressed := make([]bool, 16)
	pressed[13] = true

	in.GamepadState(0, GamepadSnapshot{Pressed: pressed})
	require.Equal(t, 1, navFrame(in, nav, 1))

	in.GamepadState(0, GamepadSnapshot{Pressed: pressed})
	require.Equal(t, 0, navFrame(in, nav, 1))
}

func TestSelection(t *testing.T) {
	selection := Selection{Count: 3}

	selection.Move(-1)
	require.Equal(t, 0, selection.Index)

	selection.Move(5)
	require.Equal(t, 2, selection.Index)

	empty := Selection{}
	empty.Move(1)
	require.Equal(t, 0, empty.Index)
}
