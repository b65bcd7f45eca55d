package engine

import (
	"math/rand"

	"github.com/vovakirdan/sky-arcade/internal/core"
)

// Advance moves pos along one axis by vel scaled by the tick factor k.
func Advance(pos *float64, vel, k float64) {
	*pos += vel * k
}

// Integrate applies gravity to vel and then moves pos by the new velocity.
func Integrate(pos, vel *float64, gravity, k float64) {
	*vel += gravity * k
	*pos += *vel * k
}

// ClampAxis restricts pos to [lo, hi]. When a clamp happens the velocity on
// that axis is reset to zero and ClampAxis reports true.
func ClampAxis(pos, vel *float64, lo, hi float64) bool {
	clamped := core.ClampF(*pos, lo, hi)
	if clamped == *pos {
		return false
	}
	*pos = clamped
	if vel != nil {
		*vel = 0
	}
	return true
}

// Bounds is a rectangular area of the world.
type Bounds struct {
	W, H float64
}

// WrapBelow reports whether an entity at top-left y has fallen past the bottom
// edge. If so it re-randomizes the entity above the screen: x in [0, W-w] and
// y in [-H, 0].
func WrapBelow(rng *rand.Rand, pos *core.Vec, w float64, b Bounds) bool {
	if pos.Y <= b.H {
		return false
	}
	*pos = RandomAbove(rng, w, b)
	return true
}

// RandomAbove returns a top-left position for an entity of width w, somewhere in
// the band of one screen height directly above the visible area.
func RandomAbove(rng *rand.Rand, w float64, b Bounds) core.Vec {
	return core.Vec{
		X: float64(RandInt(rng, 0, int(b.W-w))),
		Y: float64(RandInt(rng, -int(b.H), 0)),
	}
}

// RandomInside returns a top-left position for a w x h entity fully inside b.
func RandomInside(rng *rand.Rand, w, h float64, b Bounds) core.Vec {
	return core.Vec{
		X: float64(RandInt(rng, 0, int(b.W-w))),
		Y: float64(RandInt(rng, 0, int(b.H-h))),
	}
}

// Jitter returns +step or -step with equal probability.
func Jitter(rng *rand.Rand, step float64) float64 {
	if rng.Intn(2) == 0 {
		return -step
	}
	return step
}

// RandInt returns a uniform integer in the closed range [lo, hi].
// An empty range yields lo.
func RandInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Filter keeps the elements for which keep returns true, reusing the backing
// array of s. Order is preserved.
func Filter[T any](s []T, keep func(*T) bool) []T {
	out := s[:0]
	for i := range s {
		if keep(&s[i]) {
			out = append(out, s[i])
		}
	}
	clear(s[len(out):])
	return out
}
