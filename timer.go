package pulse

// TimerUnit defines what a single unit of a timer's countdown means.
type TimerUnit uint8

const (
	// TimerUnitFrames counts down by exactly one unit per update,
	// independent of the frame delta.
	TimerUnitFrames TimerUnit = 0

	// TimerUnitNormalized counts down by the frame delta, so one unit equals
	// one target frame interval of wall clock time.
	TimerUnitNormalized TimerUnit = 1
)

// TimerConfig configures a countdown registered with a TimerPool.
type TimerConfig struct {
	// Callback is invoked on every update with the remaining units,
	// after they have been decremented. May be nil.
	Callback func(remaining float64)

	// OnStart is invoked once when the timer is added. May be nil.
	OnStart func()

	// Units is the length of the countdown.
	Units float64

	Unit TimerUnit
}

// TimerId identifies a timer within its pool.
type TimerId uint64

type timer struct {
	id        TimerId
	callback  func(remaining float64)
	remaining float64
	unit      TimerUnit
	cancelled bool

	// generation of the pool when the timer was added
	generation uint64
}

// TimerPool holds fire and forget countdowns. A timer is removed
// from the pool during the update its remaining units reach zero.
// A timer is advanced at least once, even if it starts with zero units.
type TimerPool struct {
	timers []*timer
	nextId TimerId

	// incremented at the start of every update
	generation uint64
}

// Add registers a new timer and calls its OnStart hook.
func (p *TimerPool) Add(config TimerConfig) TimerId {
	p.nextId += 1

	t := &timer{
		id:        p.nextId,
		callback:  config.Callback,
		remaining: config.Units,
		unit:      config.Unit,

		generation: p.generation,
	}

	p.timers = append(p.timers, t)

	if config.OnStart != nil {
		config.OnStart()
	}

	return t.id
}

// Cancel stops the timer with the given id. Its callback will not be invoked again.
func (p *TimerPool) Cancel(id TimerId) {
	for _, t := range p.timers {
		if t.id == id {
			t.cancelled = true
			return
		}
	}
}

// Len returns the number of timers still counting down.
func (p *TimerPool) Len() int {
	var count int
	for _, t := range p.timers {
		if !t.cancelled {
			count += 1
		}
	}

	return count
}

// Update advances all timers. Timers added by a callback during the
// update are first advanced during the next update.
func (p *TimerPool) Update(delta float64) {
	p.generation += 1

	for idx := len(p.timers) - 1; idx >= 0; idx-- {
		if idx >= len(p.timers) {
			// a callback cleared the pool
			continue
		}

		t := p.timers[idx]
		if t.cancelled || t.generation == p.generation {
			continue
		}

		switch t.unit {
		case TimerUnitNormalized:
			t.remaining -= delta
		default:
			t.remaining -= 1
		}

		if t.callback != nil {
			t.callback(t.remaining)
		}
	}

	// remove finished timers in a second pass. Timers added during
	// this update have not been advanced yet and stay in the pool.
	for idx := len(p.timers) - 1; idx >= 0; idx-- {
		t := p.timers[idx]
		if t.cancelled || (t.generation != p.generation && t.remaining <= 0) {
			p.timers = append(p.timers[:idx], p.timers[idx+1:]...)
		}
	}
}

// Clear drops all timers without invoking their callbacks.
func (p *TimerPool) Clear() {
	clear(p.timers)
	p.timers = p.timers[:0]
}
