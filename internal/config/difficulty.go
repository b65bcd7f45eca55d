package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sky-arcade/internal/engine"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in the order they are shown to players.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a user supplied name into a preset. An empty name is
// the normal preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// StepScaleForPreset returns the multiplier applied to ramp steps.
func StepScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	case DifficultyFixed:
		return 0
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func applyRampPreset(r *engine.RampConfig, preset DifficultyPreset) error {
	if _, err := ParsePreset(string(preset)); err != nil {
		return err
	}
	if IsFixedPreset(preset) {
		r.Enabled = false
		return nil
	}
	scale := StepScaleForPreset(preset)
	r.SpeedStep *= scale
	r.GapStep = int(math.Round(float64(r.GapStep) * scale))
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func (c *SkyJumperConfig) ApplyPreset(preset DifficultyPreset) error {
	return applyRampPreset(&c.Difficulty, preset)
}

// ApplyPreset modifies the config based on a difficulty preset.
func (c *DodgerConfig) ApplyPreset(preset DifficultyPreset) error {
	return applyRampPreset(&c.Difficulty, preset)
}

// ApplyPreset modifies the config based on a difficulty preset.
func (c *WallsConfig) ApplyPreset(preset DifficultyPreset) error {
	return applyRampPreset(&c.Difficulty, preset)
}
