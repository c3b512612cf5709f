package pulse

import "fmt"

// Task is a unit of work that may span multiple frames.
// Update is called once per frame and returns true as long as the
// task wants to continue running.
type Task interface {
	Update(clock *Clock) bool
}

// TaskFactory creates a fresh task instance. Any arguments a task needs
// must be bound by the factory.
type TaskFactory func(clock *Clock) Task

// BasicTask runs a callback every frame until the callback returns true.
type BasicTask struct {
	callback func() bool
	ended    bool
}

// NewTask creates a task running the given callback. A nil
// callback creates a task that ends on its first update.
func NewTask(callback func() bool) *BasicTask {
	return &BasicTask{callback: callback}
}

func (t *BasicTask) Update(*Clock) bool {
	if t.callback == nil {
		t.ended = true
		return false
	}

	t.ended = t.callback()
	return !t.ended
}

// Ended returns true once the task has finished.
func (t *BasicTask) Ended() bool {
	return t.ended
}

// IntervalFunc receives the progress of an IntervalTask in the range [0, 1).
// Returning true ends the task early.
type IntervalFunc func(progress float64) bool

// IntervalTask runs for a duration given in steps of the target frame rate:
// a task with one step takes one second if the clock runs at its target frame rate.
//
// The progress is linear. Apply your own easing function if needed.
type IntervalTask struct {
	callback  IntervalFunc
	step      float64
	remaining float64
	ended     bool
}

// NewIntervalTask creates a new IntervalTask. The duration is normalized
// against the clocks current frame rate.
func NewIntervalTask(clock *Clock, steps float64, callback IntervalFunc) *IntervalTask {
	validateSteps(steps)

	return &IntervalTask{
		callback:  callback,
		step:      (1 / steps) / clock.FrameRate(),
		remaining: 1,
	}
}

func (t *IntervalTask) Update(clock *Clock) bool {
	if t.callback != nil && t.callback(t.Progress()) {
		t.ended = true
	}

	t.remaining -= t.step * clock.Delta()
	if t.remaining <= 0 {
		t.ended = true
	}

	return !t.ended
}

// Progress returns the linear progress of the task in the range [0, 1].
func (t *IntervalTask) Progress() float64 {
	return min(1, 1-t.remaining)
}

// Ended returns true once the task has finished.
func (t *IntervalTask) Ended() bool {
	return t.ended
}

func validateSteps(steps float64) {
	if steps <= 0 {
		panic(fmt.Sprintf("interval task needs a positive number of steps, got %v", steps))
	}
}
