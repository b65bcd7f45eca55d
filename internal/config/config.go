// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the sky-arcade games.
package config

import (
	"errors"

	"github.com/vovakirdan/sky-arcade/internal/engine"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// World is the simulated playfield size in world units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Bounds returns the world as engine bounds.
func (w World) Bounds() engine.Bounds {
	return engine.Bounds{W: w.Width, H: w.Height}
}

// SkyJumperConfig contains all configuration for Sky Jumper.
type SkyJumperConfig struct {
	World      World             `yaml:"world"`
	Player     SkyJumperPlayer   `yaml:"player"`
	Clouds     SkyJumperClouds   `yaml:"clouds"`
	Stars      SkyJumperStars    `yaml:"stars"`
	Difficulty engine.RampConfig `yaml:"difficulty"`
}

// SkyJumperPlayer defines the player square and its physics.
type SkyJumperPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	StartOffset float64 `yaml:"start_offset"` // distance above the floor at spawn
}

// SkyJumperClouds defines the falling cloud hazards.
type SkyJumperClouds struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SkyJumperStars defines the falling star collectibles.
type SkyJumperStars struct {
	Size   float64       `yaml:"size"`
	Points int           `yaml:"points"`
	Chance engine.Chance `yaml:"chance"`
}

// DodgerConfig contains all configuration for Circle Dodger.
type DodgerConfig struct {
	World      World             `yaml:"world"`
	Player     DodgerPlayer      `yaml:"player"`
	Hazards    DodgerHazards     `yaml:"hazards"`
	Difficulty engine.RampConfig `yaml:"difficulty"`
}

// DodgerPlayer defines the player circle.
type DodgerPlayer struct {
	Radius float64 `yaml:"radius"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
}

// DodgerHazards defines the falling circles.
type DodgerHazards struct {
	Radius float64       `yaml:"radius"`
	Speed  float64       `yaml:"speed"`
	Jitter float64       `yaml:"jitter"`
	Chance engine.Chance `yaml:"chance"`
}

// WallsConfig contains all configuration for Ball Through Walls.
type WallsConfig struct {
	World        World             `yaml:"world"`
	Ball         WallsBall         `yaml:"ball"`
	Walls        WallsWalls        `yaml:"walls"`
	Collectibles WallsCollectibles `yaml:"collectibles"`
	Difficulty   engine.RampConfig `yaml:"difficulty"`
}

// WallsBall defines the player ball and its physics.
type WallsBall struct {
	Radius      float64 `yaml:"radius"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// WallsWalls defines the scrolling walls and their holes.
type WallsWalls struct {
	Width      float64 `yaml:"width"`
	HoleSize   int     `yaml:"hole_size"`
	Speed      float64 `yaml:"speed"`
	IntervalMS int     `yaml:"interval_ms"`
	PassPoints int     `yaml:"pass_points"`
}

// WallsCollectibles defines the bonus squares.
type WallsCollectibles struct {
	Size        float64 `yaml:"size"`
	Points      int     `yaml:"points"`
	IntervalMS  int     `yaml:"interval_ms"`
	MinDistance float64 `yaml:"min_distance"` // horizontal clearance from any wall
	MaxAttempts int     `yaml:"max_attempts"`
}
