package config

import (
	"fmt"

	"github.com/vovakirdan/sky-arcade/internal/engine"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func (w World) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	return nil
}

func validateRamp(r engine.RampConfig) error {
	if r.IntervalMS < 0 {
		return invalid("difficulty interval_ms must not be negative")
	}
	if r.SpeedStep < 0 || r.GapStep < 0 || r.MinGap < 0 {
		return invalid("difficulty steps must not be negative")
	}
	return nil
}

func validateChance(name string, c engine.Chance) error {
	if c.Sides <= 0 || c.Hits < 0 || c.Hits > c.Sides {
		return invalid("%s chance must be 0..sides out of a positive sides, got %d/%d", name, c.Hits, c.Sides)
	}
	return nil
}

// Validate checks that the configuration describes a playable game.
func (c *SkyJumperConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.Width > c.World.Width || p.Height > c.World.Height {
		return invalid("player size %vx%v does not fit the world", p.Width, p.Height)
	}
	if p.Speed < 0 || p.Gravity <= 0 || p.JumpImpulse >= 0 {
		return invalid("player needs speed >= 0, gravity > 0 and a negative jump impulse")
	}
	if p.StartOffset < 0 || p.StartOffset > c.World.Height-p.Height {
		return invalid("player start_offset %v is outside the world", p.StartOffset)
	}
	cl := c.Clouds
	if cl.Count < 0 || cl.Width <= 0 || cl.Height <= 0 || cl.Width > c.World.Width || cl.Height > c.World.Height {
		return invalid("clouds must have a non-negative count and fit the world")
	}
	if cl.Speed < 0 {
		return invalid("cloud speed must not be negative")
	}
	if c.Stars.Size <= 0 || c.Stars.Size > c.World.Width || c.Stars.Points < 0 {
		return invalid("stars must fit the world and award non-negative points")
	}
	if err := validateChance("star", c.Stars.Chance); err != nil {
		return err
	}
	return validateRamp(c.Difficulty)
}

// Validate checks that the configuration describes a playable game.
func (c *DodgerConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	p := c.Player
	if p.Radius <= 0 || p.Speed < 0 {
		return invalid("player needs a positive radius and non-negative speed")
	}
	if p.X-p.Radius < 0 || p.X+p.Radius > c.World.Width || p.Y-p.Radius < 0 || p.Y+p.Radius > c.World.Height {
		return invalid("player start (%v, %v) is outside the world", p.X, p.Y)
	}
	h := c.Hazards
	if h.Radius <= 0 || 2*h.Radius > c.World.Width {
		return invalid("hazard radius %v does not fit the world", h.Radius)
	}
	if h.Speed < 0 || h.Jitter < 0 {
		return invalid("hazard speed and jitter must not be negative")
	}
	if err := validateChance("hazard", h.Chance); err != nil {
		return err
	}
	return validateRamp(c.Difficulty)
}

// Validate checks that the configuration describes a playable game.
func (c *WallsConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	b := c.Ball
	if b.Radius <= 0 || 2*b.Radius > c.World.Height {
		return invalid("ball radius %v does not fit the world", b.Radius)
	}
	if b.Gravity <= 0 || b.JumpImpulse >= 0 {
		return invalid("ball needs gravity > 0 and a negative jump impulse")
	}
	w := c.Walls
	if w.Width <= 0 || w.Speed < 0 || w.IntervalMS <= 0 || w.PassPoints < 0 {
		return invalid("walls need a positive width and interval, and non-negative speed and points")
	}
	if w.HoleSize <= 0 || 2*w.HoleSize > int(c.World.Height) {
		return invalid("hole size %d does not fit the world", w.HoleSize)
	}
	col := c.Collectibles
	if col.Size <= 0 || 2*col.Size > c.World.Height || col.Points < 0 {
		return invalid("collectibles must fit the world and award non-negative points")
	}
	if col.IntervalMS <= 0 || col.MinDistance < 0 || col.MaxAttempts < 0 {
		return invalid("collectibles need a positive interval and non-negative placement limits")
	}
	return validateRamp(c.Difficulty)
}
