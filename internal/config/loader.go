package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by every game configuration.
type Validator interface {
	Validate() error
}

// LoadSkyJumper loads Sky Jumper configuration.
// Search order: customPath -> ~/.sky-arcade/configs/skyjumper.yaml -> ./configs/skyjumper.yaml -> embedded default
func LoadSkyJumper(customPath string) (SkyJumperConfig, error) {
	return load("skyjumper", customPath, DefaultSkyJumperConfig)
}

// LoadDodger loads Circle Dodger configuration.
// Search order: customPath -> ~/.sky-arcade/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default
func LoadDodger(customPath string) (DodgerConfig, error) {
	return load("dodger", customPath, DefaultDodgerConfig)
}

// LoadWalls loads Ball Through Walls configuration.
// Search order: customPath -> ~/.sky-arcade/configs/walls.yaml -> ./configs/walls.yaml -> embedded default
func LoadWalls(customPath string) (WallsConfig, error) {
	return load("walls", customPath, DefaultWallsConfig)
}

// load resolves a configuration for gameID. Files are decoded on top of the
// hardcoded defaults, so a file only needs the keys it changes.
func load[T any, PT interface {
	*T
	Validator
}](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// An explicit path must work.
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return defaults(), err
		}
		if err := PT(&cfg).Validate(); err != nil {
			return defaults(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var candidates []string
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", filename))

	for _, path := range candidates {
		cfg, err := decodeFile(path, defaults)
		if err != nil {
			continue
		}
		if PT(&cfg).Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil || PT(&cfg).Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed is unusable
	}
	return cfg, nil
}

func decodeFile[T any](path string, defaults func() T) (T, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sky-arcade", "configs", filename)
}
