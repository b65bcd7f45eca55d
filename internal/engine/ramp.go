package engine

import "time"

// RampConfig controls how difficulty grows over a run.
type RampConfig struct {
	Enabled    bool    `yaml:"enabled"`
	IntervalMS int     `yaml:"interval_ms"` // 0 = every tick
	SpeedStep  float64 `yaml:"speed_step"`  // added to speed on every step
	GapStep    int     `yaml:"gap_step"`    // removed from gap size on every step
	MinGap     int     `yaml:"min_gap"`     // gap never shrinks below this
}

// Ramp applies stepwise difficulty increases on the simulation clock.
type Ramp struct {
	cfg   RampConfig
	timer Interval
	steps int
}

// NewRamp creates a ramp from its configuration.
func NewRamp(cfg RampConfig) *Ramp {
	return &Ramp{
		cfg:   cfg,
		timer: NewInterval(time.Duration(cfg.IntervalMS) * time.Millisecond),
	}
}

// Enabled reports whether the ramp ever fires.
func (r *Ramp) Enabled() bool {
	return r.cfg.Enabled
}

// Tick reports whether a difficulty step happens at time now. Continuous ramps
// step on every tick; interval ramps step once more than the interval has
// elapsed since the previous step.
func (r *Ramp) Tick(now time.Duration) bool {
	if !r.cfg.Enabled {
		return false
	}
	if r.cfg.IntervalMS > 0 && !r.timer.Due(now) {
		return false
	}
	r.steps++
	return true
}

// Speed returns speed after one difficulty step.
func (r *Ramp) Speed(speed float64) float64 {
	return speed + r.cfg.SpeedStep
}

// Gap returns gap after one difficulty step. The gap only shrinks while it is
// above the floor and never goes below it.
func (r *Ramp) Gap(gap int) int {
	if gap <= r.cfg.MinGap {
		return gap
	}
	gap -= r.cfg.GapStep
	if gap < r.cfg.MinGap {
		gap = r.cfg.MinGap
	}
	return gap
}

// Steps returns how many difficulty steps have been applied.
func (r *Ramp) Steps() int {
	return r.steps
}

// Reset clears the ramp's progress.
func (r *Ramp) Reset() {
	r.timer.Reset()
	r.steps = 0
}
