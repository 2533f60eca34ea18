package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "pressure.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.pressurezone/configs/pressure.yaml ->
// ./configs/pressure.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and sanitizes the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.sanitize()
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// sanitize replaces values that would break the simulation with defaults.
func (c *Config) sanitize() {
	def := Default()
	if c.Timing.MaxDelta <= 0 {
		c.Timing.MaxDelta = def.Timing.MaxDelta
	}
	if c.Timing.TrailLength < 0 {
		c.Timing.TrailLength = 0
	}
	if c.Barriers.SpawnInterval <= 0 {
		c.Barriers.SpawnInterval = def.Barriers.SpawnInterval
	}
	if c.Barriers.WidthRatio <= 0 {
		c.Barriers.WidthRatio = def.Barriers.WidthRatio
	}
	if c.Physics.MaxRiseSpeed > c.Physics.MaxFallSpeed {
		c.Physics.MaxRiseSpeed, c.Physics.MaxFallSpeed = def.Physics.MaxRiseSpeed, def.Physics.MaxFallSpeed
	}
	if c.Difficulty.Every <= 0 {
		c.Difficulty.Every = def.Difficulty.Every
	}
	if c.Display.CellWidth <= 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Display.CellHeight <= 0 {
		c.Display.CellHeight = def.Display.CellHeight
	}
	if c.Input.DebounceMS < 0 {
		c.Input.DebounceMS = 0
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	c.Audio.MasterVolume = clampF(c.Audio.MasterVolume, 0, 1)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pressurezone", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Barriers.BaseSpeed -= 40
		cfg.Barriers.MinGapHeight += 40
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSteps = 10
	}
}
