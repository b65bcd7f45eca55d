package core

import "time"

// Clock is a simulation clock advanced by a fixed step every tick.
// All game timers read it, so spawn and difficulty timing depends only on
// the number of ticks simulated, never on real time.
type Clock struct {
	step  time.Duration
	now   time.Duration
	ticks int
}

// NewClock creates a clock that advances by step on every Tick.
func NewClock(step time.Duration) *Clock {
	return &Clock{step: step}
}

// Tick advances the clock by one step and returns the new time.
func (c *Clock) Tick() time.Duration {
	c.now += c.step
	c.ticks++
	return c.now
}

// Now returns the simulated time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks returns the number of ticks simulated so far.
func (c *Clock) Ticks() int {
	return c.ticks
}
