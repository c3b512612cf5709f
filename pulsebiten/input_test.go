package pulsebiten

import (
	"testing"

	"github.com/frameloop/pulse"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestKeyOfMatchesDefaultBindings(t *testing.T) {
	require.Contains(t, pulse.DefaultNavBindings.Next.Keys, KeyOf(ebiten.KeyArrowDown))
	require.Contains(t, pulse.DefaultNavBindings.Previous.Keys, KeyOf(ebiten.KeyArrowUp))
}

func TestDiffKeys(t *testing.T) {
	input := pulse.NewInputTracker(nil)

	frame := func(previous, pressed []ebiten.Key) {
		input.Prepare()
		diffKeys(previous, pressed, input)
	}

	frame(nil, []ebiten.Key{ebiten.KeyA, ebiten.KeySpace})
	require.True(t, input.KeyDown(KeyOf(ebiten.KeyA)))
	require.True(t, input.KeyDown(KeyOf(ebiten.KeySpace)))
	input.Finalize()

	frame([]ebiten.Key{ebiten.KeyA, ebiten.KeySpace}, []ebiten.Key{ebiten.KeySpace})
	require.True(t, input.KeyUp(KeyOf(ebiten.KeyA)))
	require.True(t, input.Key(KeyOf(ebiten.KeySpace)))
	require.False(t, input.KeyDown(KeyOf(ebiten.KeySpace)))
	input.Finalize()
}

func TestDiffGamepads(t *testing.T) {
	input := pulse.NewInputTracker(nil)

	connect := func(id ebiten.GamepadID) { input.GamepadConnected(pulse.GamepadId(id)) }
	disconnect := func(id ebiten.GamepadID) { input.GamepadDisconnected(pulse.GamepadId(id)) }

	var connected []ebiten.GamepadID

	// a gamepad connected several ticks ago is still picked up
	connected = diffGamepads(connected, []ebiten.GamepadID{3}, connect, disconnect)
	require.Equal(t, []ebiten.GamepadID{3}, connected)
	require.Equal(t, pulse.GamepadId(3), input.PrimaryGamepad().Id())

	connected = diffGamepads(connected, []ebiten.GamepadID{5, 3}, connect, disconnect)
	require.Equal(t, []ebiten.GamepadID{3, 5}, connected)
	require.Len(t, input.Gamepads(), 2)

	first := input.Gamepad(3)

	connected = diffGamepads(connected, []ebiten.GamepadID{5}, connect, disconnect)
	require.Equal(t, []ebiten.GamepadID{5}, connected)
	require.False(t, first.Connected())
	require.Equal(t, pulse.GamepadId(5), input.PrimaryGamepad().Id())

	// nothing changed, nothing is reported
	connected = diffGamepads(connected, []ebiten.GamepadID{5}, connect, disconnect)
	require.Equal(t, []ebiten.GamepadID{5}, connected)
	require.Len(t, input.Gamepads(), 1)
}

func TestTimingLines(t *testing.T) {
	stats := pulse.NewTimingStats()
	stats.MeasureFrame().Stop()

	lines := timingLines(stats)
	require.Len(t, lines, len(pulse.Phases)+1)
	require.Contains(t, lines[len(lines)-1], "runs=    1")
}
