package runner

import "time"

// Clock turns the frame driver's timestamps into per-frame deltas.
// The first timestamp only primes the clock. Deltas that are zero or negative
// are discarded and deltas above maxDelta (a resumed laptop, a suspended
// terminal) are clamped, so a single tick never covers a long stall.
type Clock struct {
	maxDelta time.Duration
	last     time.Time
	primed   bool
}

// NewClock creates a clock that clamps deltas to maxDelta (0 = no clamp).
func NewClock(maxDelta time.Duration) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Advance records now and returns the elapsed time since the previous call.
// ok is false when no tick should run for this timestamp.
func (c *Clock) Advance(now time.Time) (dt time.Duration, ok bool) {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0, false
	}

	dt = now.Sub(c.last)
	if dt <= 0 {
		return 0, false
	}
	c.last = now

	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt, true
}

// Reset forgets the previous timestamp. The next Advance primes again;
// shells call this when resuming from pause.
func (c *Clock) Reset() {
	c.primed = false
	c.last = time.Time{}
}
