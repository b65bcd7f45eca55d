package engine

import (
	"math/rand"
	"testing"
	"time"
)

func TestChanceRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	always := Chance{Hits: 1, Sides: 1}
	never := Chance{Hits: 0, Sides: 100}
	broken := Chance{Hits: 1, Sides: 0}

	for range 50 {
		if !always.Roll(rng) {
			t.Fatal("1/1 chance should always spawn")
		}
		if never.Roll(rng) || broken.Roll(rng) {
			t.Fatal("zero chance should never spawn")
		}
	}
}

func TestChanceRate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	c := Chance{Hits: 1, Sides: 60}

	const trials = 60000
	hits := 0
	for range trials {
		if c.Roll(rng) {
			hits++
		}
	}

	// Expect ~1000; allow a wide band so the test is not flaky across seeds.
	if hits < 800 || hits > 1200 {
		t.Errorf("1/60 chance produced %d hits in %d trials", hits, trials)
	}
}

func TestIntervalDue(t *testing.T) {
	iv := NewInterval(2000 * time.Millisecond)

	if iv.Due(2000 * time.Millisecond) {
		t.Error("interval must be strictly exceeded before firing")
	}
	if !iv.Due(2001 * time.Millisecond) {
		t.Error("interval should fire once exceeded")
	}
	if iv.Due(4001 * time.Millisecond) {
		t.Error("period should be measured from the last firing")
	}
	if iv.Due(3000 * time.Millisecond) {
		t.Error("interval should not fire again before another period")
	}
	if !iv.Due(4002 * time.Millisecond) {
		t.Error("interval should fire after another full period")
	}

	iv.Reset()
	if !iv.Due(2001 * time.Millisecond) {
		t.Error("Reset should rewind the interval to zero")
	}

	var zero Interval
	if zero.Due(time.Hour) {
		t.Error("zero interval should never fire")
	}
}
