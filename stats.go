package pulse

import (
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
	}

	t.MovingAverage = (95*t.MovingAverage + 5*d) / 100

	t.Count += 1

	return t
}

// TimingStats measures the time spent in each phase of the frame loop.
// Set App.Stats to start measuring.
type TimingStats struct {
	ByPhase [phaseCount]Timings
	Frame   Timings
}

func NewTimingStats() *TimingStats {
	return &TimingStats{}
}

func (t *TimingStats) MeasurePhase(phase Phase) TimingStopwatch {
	startTime := time.Now()

	return TimingStopwatch{
		Stop: func() {
			t.ByPhase[phase] = t.ByPhase[phase].Add(time.Since(startTime))
		},
	}
}

func (t *TimingStats) MeasureFrame() TimingStopwatch {
	startTime := time.Now()

	return TimingStopwatch{
		Stop: func() {
			t.Frame = t.Frame.Add(time.Since(startTime))
		},
	}
}

type TimingStopwatch struct {
	Stop func()
}
