package pulse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// a clock that always reports a delta of one
func unitDeltaClock(frameRate float64) *Clock {
	clock, mt := newManualClock(frameRate)
	clock.Tick()

	mt.Advance(clock.TargetInterval())
	clock.Tick()

	return clock
}

func TestBasicTask(t *testing.T) {
	var calls int
	task := NewTask(func() bool {
		calls += 1
		return calls == 3
	})

	require.True(t, task.Update(nil))
	require.True(t, task.Update(nil))
	require.False(t, task.Update(nil))
	require.True(t, task.Ended())
}

func TestBasicTaskWithoutCallback(t *testing.T) {
	task := NewTask(nil)
	require.False(t, task.Update(nil))
	require.True(t, task.Ended())
}

func TestIntervalTask(t *testing.T) {
	clock := unitDeltaClock(60)
	require.InDelta(t, 1.0, clock.Delta(), 1e-6)

	var progress []float64
	task := NewIntervalTask(clock, 1, func(p float64) bool {
		progress = append(progress, p)
		return false
	})

	var updates int
	for task.Update(clock) {
		updates += 1
		require.Less(t, updates, 1000, "task does not terminate")
	}

	updates += 1

	require.True(t, task.Ended())
	require.InDelta(t, 60, updates, 1)

	require.Equal(t, 0.0, progress[0])
	for idx := 1; idx < len(progress); idx++ {
		require.Greater(t, progress[idx], progress[idx-1])
		require.Less(t, progress[idx], 1.0)
	}

	require.InDelta(t, 1.0, progress[len(progress)-1], 0.05)
}

func TestIntervalTaskSteps(t *testing.T) {
	clock := unitDeltaClock(60)

	// two steps take twice as long
	task := NewIntervalTask(clock, 2, nil)

	var updates int
	for task.Update(clock) {
		updates += 1
	}

	require.InDelta(t, 120, updates+1, 1)
}

func TestIntervalTaskEarlyCompletion(t *testing.T) {
	clock := unitDeltaClock(60)

	var calls int
	task := NewIntervalTask(clock, 1, func(p float64) bool {
		calls += 1
		return calls == 5
	})

	for range 4 {
		require.True(t, task.Update(clock))
	}

	require.False(t, task.Update(clock))
	require.True(t, task.Ended())
	require.Less(t, task.Progress(), 1.0)
}

func TestIntervalTaskInvalidSteps(t *testing.T) {
	clock := unitDeltaClock(60)
	require.Panics(t, func() { NewIntervalTask(clock, 0, nil) })
}
