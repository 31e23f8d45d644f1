package clock

import "time"

// Timer counts a duration down from elapsed ticks. A one-shot timer stays
// finished once its duration is reached; a repeating timer wraps around and
// reports JustFinished on every completed cycle.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	repeating    bool
	paused       bool
	finished     bool
	justFinished bool
}

// NewTimer creates a one-shot timer.
func NewTimer(duration time.Duration) *Timer {
	return &Timer{duration: duration}
}

// NewRepeatingTimer creates a timer that restarts itself on completion.
func NewRepeatingTimer(duration time.Duration) *Timer {
	return &Timer{duration: duration, repeating: true}
}

// FromSeconds creates a one-shot timer from a second count.
func FromSeconds(seconds float64) *Timer {
	return NewTimer(time.Duration(seconds * float64(time.Second)))
}

// RepeatingFromSeconds creates a repeating timer from a second count.
func RepeatingFromSeconds(seconds float64) *Timer {
	return NewRepeatingTimer(time.Duration(seconds * float64(time.Second)))
}

// Tick advances the timer by delta. Paused timers do not advance.
func (t *Timer) Tick(delta time.Duration) {
	t.justFinished = false
	if t.paused {
		return
	}
	if t.finished && !t.repeating {
		return
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		return
	}

	t.justFinished = true
	if t.repeating {
		if t.duration > 0 {
			t.elapsed %= t.duration
		} else {
			t.elapsed = 0
		}
	} else {
		t.elapsed = t.duration
		t.finished = true
	}
}

// Finished reports whether a one-shot timer has completed. A repeating timer
// only reports true on the tick it wrapped.
func (t *Timer) Finished() bool {
	return t.finished || t.justFinished
}

// JustFinished reports whether the timer completed during the latest Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Elapsed returns the time accumulated toward the current cycle.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// ElapsedSeconds returns Elapsed in seconds.
func (t *Timer) ElapsedSeconds() float64 {
	return t.elapsed.Seconds()
}

// Duration returns the configured cycle duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Percent returns the completion fraction of the current cycle in [0, 1].
func (t *Timer) Percent() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Remaining returns the time left in the current cycle.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Reset rewinds the timer to the start of a cycle.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// Pause stops the timer from advancing until Resume.
func (t *Timer) Pause() {
	t.paused = true
}

// Resume lets a paused timer advance again.
func (t *Timer) Resume() {
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Repeating reports whether the timer restarts itself on completion.
func (t *Timer) Repeating() bool {
	return t.repeating
}

// SetDuration replaces the cycle duration without resetting elapsed time.
func (t *Timer) SetDuration(duration time.Duration) {
	t.duration = duration
}
