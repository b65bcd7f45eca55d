package core

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	c := NewClock(10 * time.Millisecond)

	for range 3 {
		c.Tick()
	}

	if c.Now() != 30*time.Millisecond {
		t.Errorf("Now() = %v, expected 30ms", c.Now())
	}
	if c.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", c.Ticks())
	}
}

func TestRuntimeConfigTiming(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickScale() != 1 {
		t.Errorf("TickScale() at 60 Hz = %v, expected exactly 1", cfg.TickScale())
	}

	cfg.TickRate = 30
	if cfg.TickDuration() != time.Second/30 {
		t.Errorf("TickDuration() = %v, expected %v", cfg.TickDuration(), time.Second/30)
	}
	if s := cfg.TickScale(); s < 1.99 || s > 2.01 {
		t.Errorf("TickScale() at 30 Hz = %v, expected ~2", s)
	}

	cfg.TickRate = 0
	if cfg.TickDuration() != time.Second/DefaultTickRate {
		t.Errorf("zero tick rate should fall back to default, got %v", cfg.TickDuration())
	}
}
