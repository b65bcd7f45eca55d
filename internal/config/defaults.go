package config

import (
	_ "embed"

	"github.com/vovakirdan/sky-arcade/internal/engine"
)

//go:embed defaults/skyjumper.yaml
var defaultSkyJumperYAML []byte

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

//go:embed defaults/walls.yaml
var defaultWallsYAML []byte

// DefaultSkyJumperConfig returns the default Sky Jumper configuration.
func DefaultSkyJumperConfig() SkyJumperConfig {
	return SkyJumperConfig{
		World: World{Width: 800, Height: 600},
		Player: SkyJumperPlayer{
			Width:       40,
			Height:      40,
			Speed:       5,
			Gravity:     1,
			JumpImpulse: -15,
			StartOffset: 50,
		},
		Clouds: SkyJumperClouds{
			Count:  5,
			Width:  100,
			Height: 20,
			Speed:  2,
		},
		Stars: SkyJumperStars{
			Size:   20,
			Points: 1,
			Chance: engine.Chance{Hits: 1, Sides: 100},
		},
		Difficulty: engine.RampConfig{
			Enabled:   true,
			SpeedStep: 0.01,
		},
	}
}

// DefaultDodgerConfig returns the default Circle Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		World: World{Width: 400, Height: 600},
		Player: DodgerPlayer{
			Radius: 10,
			X:      200,
			Y:      570,
			Speed:  5,
		},
		Hazards: DodgerHazards{
			Radius: 30,
			Speed:  3,
			Jitter: 3,
			Chance: engine.Chance{Hits: 1, Sides: 60},
		},
		Difficulty: engine.RampConfig{
			Enabled:    false,
			IntervalMS: 10000,
			SpeedStep:  0.5,
		},
	}
}

// DefaultWallsConfig returns the default Ball Through Walls configuration.
func DefaultWallsConfig() WallsConfig {
	return WallsConfig{
		World: World{Width: 800, Height: 600},
		Ball: WallsBall{
			Radius:      20,
			X:           200,
			Y:           300,
			Gravity:     0.5,
			JumpImpulse: -7,
		},
		Walls: WallsWalls{
			Width:      100,
			HoleSize:   150,
			Speed:      5,
			IntervalMS: 2000,
			PassPoints: 1,
		},
		Collectibles: WallsCollectibles{
			Size:        30,
			Points:      5,
			IntervalMS:  5000,
			MinDistance: 150,
			MaxAttempts: 32,
		},
		Difficulty: engine.RampConfig{
			Enabled:    true,
			IntervalMS: 10000,
			SpeedStep:  1,
			GapStep:    10,
			MinGap:     100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "skyjumper":
		return defaultSkyJumperYAML
	case "dodger":
		return defaultDodgerYAML
	case "walls":
		return defaultWallsYAML
	default:
		return nil
	}
}
