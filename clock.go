package pulse

import (
	"fmt"
	"time"
)

// DefaultFrameRate is the target frame rate a Clock normalizes against
// if nothing else is configured.
const DefaultFrameRate = 60

// Clock tracks time and normalizes it into a frame rate independent delta.
//
// A delta of 1 means that exactly one target frame interval has passed since
// the previous tick. If a frame stalls, the delta grows proportionally instead
// of producing multiple steps, so all per frame motion must be scaled by Delta.
//
// The progression of time can be scaled by setting the Scale field.
// This will scale the delta starting at the next tick.
type Clock struct {
	// Now returns the current wall clock time. Defaults to time.Now.
	Now func() time.Time

	Scale float64

	frameRate float64

	start time.Time
	last  time.Time

	frames  uint64
	delta   float64
	elapsed time.Duration
}

// NewClock creates a new clock targeting the given frame rate.
func NewClock(frameRate float64) *Clock {
	c := &Clock{Now: time.Now, Scale: 1.0}
	c.SetFrameRate(frameRate)
	return c
}

// Start resets the reference points of the clock to the current time.
func (c *Clock) Start() {
	now := c.now()
	c.start = now
	c.last = now
	c.frames = 0
	c.delta = 0
	c.elapsed = 0
}

// Tick advances the clock by one frame and recomputes the delta.
func (c *Clock) Tick() {
	now := c.now()

	if c.last.IsZero() {
		c.start = now
		c.last = now
	}

	delta := float64(now.Sub(c.last)) / float64(c.TargetInterval()) * c.Scale
	c.last = now

	// the wall clock might jump backwards
	c.delta = max(0, delta)

	c.frames += 1
	c.elapsed = max(c.elapsed, now.Sub(c.start))
}

// SetFrameRate changes the configured frame rate. This only affects future ticks.
func (c *Clock) SetFrameRate(frameRate float64) {
	if frameRate <= 0 {
		panic(fmt.Sprintf("frame rate must be positive, got %v", frameRate))
	}

	c.frameRate = frameRate
}

// FrameRate returns the configured target frame rate.
func (c *Clock) FrameRate() float64 {
	return c.frameRate
}

// TargetInterval is the wall clock duration of one frame at the target frame rate.
func (c *Clock) TargetInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.frameRate)
}

// Delta returns the time between the two most recent ticks,
// measured in target frame intervals.
func (c *Clock) Delta() float64 {
	return c.delta
}

// Elapsed returns the wall clock time since the clock was started.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Frames returns the number of ticks since the clock was started.
func (c *Clock) Frames() uint64 {
	return c.frames
}

func (c *Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}

	return c.Now()
}
