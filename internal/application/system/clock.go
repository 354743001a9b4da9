package system

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TickClock is advanced by the game loop so that timers follow simulated
// frames instead of wall time. Replays depend on this.
type TickClock struct {
	now time.Time
}

// NewTickClock creates a clock starting at start
func NewTickClock(start time.Time) *TickClock {
	return &TickClock{now: start}
}

// Now returns the simulated time
func (c *TickClock) Now() time.Time { return c.now }

// Advance moves the clock forward by dt seconds
func (c *TickClock) Advance(dt float64) {
	c.now = c.now.Add(time.Duration(dt * float64(time.Second)))
}
