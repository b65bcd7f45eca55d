package engine

import (
	"math/rand"
	"time"
)

// Chance is a per-tick spawn probability of Hits out of Sides.
type Chance struct {
	Hits  int `yaml:"hits"`
	Sides int `yaml:"sides"`
}

// Roll draws once and reports whether a spawn should happen this tick.
func (c Chance) Roll(rng *rand.Rand) bool {
	if c.Sides <= 0 || c.Hits <= 0 {
		return false
	}
	return rng.Intn(c.Sides) < c.Hits
}

// Interval gates spawns on the simulation clock.
type Interval struct {
	Every time.Duration
	last  time.Duration
}

// NewInterval creates an interval timer whose first period starts at zero.
func NewInterval(every time.Duration) Interval {
	return Interval{Every: every}
}

// Due reports whether more than Every has elapsed since the last firing and,
// if so, records now as the new firing time.
func (iv *Interval) Due(now time.Duration) bool {
	if iv.Every <= 0 {
		return false
	}
	if now-iv.last > iv.Every {
		iv.last = now
		return true
	}
	return false
}

// Reset restarts the interval at time zero.
func (iv *Interval) Reset() {
	iv.last = 0
}
