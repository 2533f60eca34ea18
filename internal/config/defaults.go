package config

import (
	_ "embed"
)

//go:embed defaults/pressure.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It mirrors
// defaults/pressure.yaml and is the last fallback if the embed fails to parse.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      1200,
			RiseImpulse:  -360,
			MaxFallSpeed: 680,
			MaxRiseSpeed: -480,
			PlayerRadius: 18,
		},
		Barriers: Barriers{
			WidthRatio:       0.66,
			MarginY:          64,
			BaseSpeed:        280,
			SpawnInterval:    1.25,
			FirstSpawnFactor: 0.6,
			MinGapHeight:     140,
			GapRatio:         0.22,
			DriftAmplitude:   12,
			DriftFrequency:   0.6,
			SeedRange:        10,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			Every:         5,
			SpeedStep:     8,
			SpeedCeiling:  520,
			IntervalStep:  0.02,
			IntervalFloor: 0.72,
			GapStep:       4,
			GapFloor:      90,
			InitialSteps:  0,
		},
		Timing: Timing{
			MaxDelta:      0.033,
			FlashDuration: 0.25,
			TrailLength:   20,
		},
		Input: Input{
			DebounceMS: 60,
			MuteRegion: 50,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 1.0,
			SampleRate:   44100,
		},
		Display: Display{
			CellWidth:  10,
			CellHeight: 20,
			FarStars:   60,
			NearStars:  30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
