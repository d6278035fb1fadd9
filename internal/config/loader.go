package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "brickpong.yaml"

// LoadBrickPong loads BrickPong configuration.
// Search order: customPath -> ./configs/brickpong.yaml -> ~/.brickpong/configs/brickpong.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadBrickPong(customPath string) (BrickPongConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickPongConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BrickPongConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := parse(defaultBrickPongYAML)
	if err != nil {
		return DefaultBrickPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (BrickPongConfig, error) {
	cfg := DefaultBrickPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrickPongConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := []string{filepath.Join("configs", configFile)}
	if p := userConfigPath(configFile); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickpong", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BrickPongConfig, preset DifficultyPreset) error {
	if _, err := ParsePreset(string(preset)); err != nil {
		return err
	}

	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return nil
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.AI.MoveProbability = 0.45
		cfg.AI.SpeedFactor = 0.75
	case DifficultyHard:
		cfg.AI.MoveProbability = 0.75
		cfg.AI.SpeedFactor = 1.25
		cfg.Physics.BallSpeed *= 1.2
	}
	return nil
}
