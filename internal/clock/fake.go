package clock

import "time"

// FakeClock is a Clock pinned to a fixed instant for tests. Advance moves
// it forward, which is how year-rollover behavior in code generation and
// audit retention cutoffs get exercised deterministically.
type FakeClock struct {
	now time.Time
}

// NewFakeClock pins the clock at t, normalized to UTC like the rest of
// the stored timestamps.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance shifts the pinned instant forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
