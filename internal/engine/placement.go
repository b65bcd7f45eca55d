package engine

import "github.com/vovakirdan/sky-arcade/internal/core"

// PlaceStatus describes how a placement request was resolved.
type PlaceStatus int

const (
	// Placed means a random candidate satisfied the constraint.
	Placed PlaceStatus = iota
	// PlacedFallback means every random candidate was rejected and the
	// fallback position was used.
	PlacedFallback
	// Rejected means no valid position was found; nothing should spawn.
	Rejected
)

// String returns a human-readable name for the status.
func (s PlaceStatus) String() string {
	switch s {
	case Placed:
		return "placed"
	case PlacedFallback:
		return "fallback"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Ok reports whether a position was produced.
func (s PlaceStatus) Ok() bool {
	return s == Placed || s == PlacedFallback
}

// Placement is a bounded rejection sampler.
type Placement struct {
	MaxAttempts int
	Candidate   func() core.Vec
	Valid       func(core.Vec) bool
	Fallback    func() core.Vec // optional
}

// Place tries up to MaxAttempts random candidates, then the fallback. The
// returned position always satisfies Valid unless the status is Rejected.
func (p Placement) Place() (core.Vec, PlaceStatus) {
	for range p.MaxAttempts {
		pos := p.Candidate()
		if p.Valid(pos) {
			return pos, Placed
		}
	}

	if p.Fallback != nil {
		pos := p.Fallback()
		if p.Valid(pos) {
			return pos, PlacedFallback
		}
	}

	return core.Vec{}, Rejected
}
