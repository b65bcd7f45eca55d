package tui

import (
	"time"

	"github.com/vovakirdan/sky-arcade/internal/core"
)

// DefaultHoldWindow is how long a horizontal key stays held after a press.
// Terminals wait up to about 500 ms before the first auto-repeat of a held
// key, so a shorter window drops the key between the first press and the
// first repeat.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldTracker emulates held keys on terminals, which only report presses.
// A direction stays active until its window passes without another press,
// or until the opposite direction is pressed.
type HoldTracker struct {
	window time.Duration
	left   time.Time // held until
	right  time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window}
}

// Press records a key press at time now. Non-directional actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now.Add(h.window)
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now.Add(h.window)
		h.left = time.Time{}
	}
}

// Held reports whether a direction is active at time now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	switch a {
	case core.ActionLeft:
		return now.Before(h.left)
	case core.ActionRight:
		return now.Before(h.right)
	}
	return false
}

// Apply sets the held directions on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	if h.Held(core.ActionLeft, now) {
		frame.Set(core.ActionLeft)
	}
	if h.Held(core.ActionRight, now) {
		frame.Set(core.ActionRight)
	}
}

// Release drops all held directions.
func (h *HoldTracker) Release() {
	h.left = time.Time{}
	h.right = time.Time{}
}
