// Package clock provides the frame clock and timers that drive per-tick
// game logic.
package clock

import "time"

// Clock tracks wall time across frames: the delta since the previous frame,
// the elapsed time since startup and the frame count. A scale factor slows
// down or speeds up the scaled delta for slow-motion effects without touching
// the raw measurements.
type Clock struct {
	startup time.Time
	last    time.Time
	delta   time.Duration
	frames  uint64
	scale   float64

	// now is swappable for tests.
	now func() time.Time
}

// NewClock creates a clock starting at the current instant with scale 1.
func NewClock() *Clock {
	n := time.Now
	return &Clock{
		startup: n(),
		last:    n(),
		scale:   1,
		now:     n,
	}
}

// Tick advances the clock by one frame, measuring the delta since the
// previous Tick (or since creation, on the first frame).
func (c *Clock) Tick() {
	now := c.now()
	c.delta = now.Sub(c.last)
	c.last = now
	c.frames++
}

// Delta returns the unscaled duration of the previous frame.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// DeltaSeconds returns the unscaled previous frame duration in seconds.
func (c *Clock) DeltaSeconds() float64 {
	return c.delta.Seconds()
}

// ScaledDelta returns the previous frame duration multiplied by the scale.
func (c *Clock) ScaledDelta() time.Duration {
	return time.Duration(float64(c.delta) * c.scale)
}

// Elapsed returns the time since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	return c.last.Sub(c.startup)
}

// ElapsedSeconds returns the time since creation in seconds.
func (c *Clock) ElapsedSeconds() float64 {
	return c.Elapsed().Seconds()
}

// FrameCount returns the number of completed Ticks.
func (c *Clock) FrameCount() uint64 {
	return c.frames
}

// FPS returns the instantaneous frame rate from the previous delta, or 0
// before the first Tick.
func (c *Clock) FPS() float64 {
	if c.delta <= 0 {
		return 0
	}
	return 1 / c.delta.Seconds()
}

// Scale returns the time scale factor.
func (c *Clock) Scale() float64 {
	return c.scale
}

// SetScale replaces the time scale factor. Negative values are clamped to 0.
func (c *Clock) SetScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

// Reset restarts the clock at the current instant, zeroing delta, elapsed
// time and frame count. The scale is kept.
func (c *Clock) Reset() {
	now := c.now()
	c.startup = now
	c.last = now
	c.delta = 0
	c.frames = 0
}
