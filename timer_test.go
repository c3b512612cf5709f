package pulse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerFiresExactlyUnitsTimes(t *testing.T) {
	var pool TimerPool

	var calls []float64
	var started bool

	pool.Add(TimerConfig{
		Units:    5,
		OnStart:  func() { started = true },
		Callback: func(remaining float64) { calls = append(calls, remaining) },
	})

	require.True(t, started)

	for range 10 {
		// the delta is ignored for frame based timers
		pool.Update(3.5)
	}

	require.Equal(t, []float64{4, 3, 2, 1, 0}, calls)
	require.Equal(t, 0, pool.Len())
}

func TestTimerNormalized(t *testing.T) {
	var pool TimerPool

	var calls int
	pool.Add(TimerConfig{
		Units:    3,
		Unit:     TimerUnitNormalized,
		Callback: func(remaining float64) { calls += 1 },
	})

	pool.Update(2)
	require.Equal(t, 1, pool.Len())

	pool.Update(2)
	require.Equal(t, 0, pool.Len())
	require.Equal(t, 2, calls)
}

func TestTimerWithoutCallback(t *testing.T) {
	var pool TimerPool

	pool.Add(TimerConfig{Units: 2})

	require.NotPanics(t, func() {
		pool.Update(1)
		pool.Update(1)
	})

	require.Equal(t, 0, pool.Len())
}

func TestTimerCancel(t *testing.T) {
	var pool TimerPool

	var calls int
	id := pool.Add(TimerConfig{
		Units:    10,
		Callback: func(float64) { calls += 1 },
	})

	pool.Update(1)
	pool.Cancel(id)
	pool.Update(1)

	require.Equal(t, 1, calls)
	require.Equal(t, 0, pool.Len())

	// unknown ids are ignored
	pool.Cancel(id)
	pool.Cancel(1234)
}

func TestTimerAddedDuringUpdate(t *testing.T) {
	var pool TimerPool

	var innerCalls int

	pool.Add(TimerConfig{
		Units: 1,
		Callback: func(float64) {
			pool.Add(TimerConfig{
				Units:    1,
				Callback: func(float64) { innerCalls += 1 },
			})
		},
	})

	pool.Update(1)
	require.Equal(t, 0, innerCalls)
	require.Equal(t, 1, pool.Len())

	pool.Update(1)
	require.Equal(t, 1, innerCalls)
	require.Equal(t, 0, pool.Len())
}

func TestTimerZeroUnitsFiresOnce(t *testing.T) {
	var pool TimerPool

	var calls int
	pool.Add(TimerConfig{Callback: func(float64) { calls += 1 }})

	pool.Update(1)
	pool.Update(1)

	require.Equal(t, 1, calls)
}

func TestTimerClearDuringUpdate(t *testing.T) {
	var pool TimerPool

	pool.Add(TimerConfig{Units: 5})
	pool.Add(TimerConfig{Units: 5, Callback: func(float64) { pool.Clear() }})

	require.NotPanics(t, func() { pool.Update(1) })
	require.Equal(t, 0, pool.Len())
}

func TestTimerAddedAfterClearDuringUpdate(t *testing.T) {
	var pool TimerPool

	var innerCalls int

	pool.Add(TimerConfig{Units: 5})
	pool.Add(TimerConfig{
		Units: 5,
		Callback: func(float64) {
			pool.Clear()
			pool.Add(TimerConfig{
				Units:    1,
				Callback: func(float64) { innerCalls += 1 },
			})
		},
	})

	pool.Update(1)
	require.Equal(t, 0, innerCalls)
	require.Equal(t, 1, pool.Len())

	pool.Update(1)
	require.Equal(t, 1, innerCalls)
	require.Equal(t, 0, pool.Len())
}
