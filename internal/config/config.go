// Package config provides YAML-based game configuration loading and
// difficulty management for Pressure Zone.
package config

import "time"

// Config contains all tuning for the game. Distances are in world pixels,
// times in seconds unless the field says otherwise.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Barriers   Barriers         `yaml:"barriers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     Timing           `yaml:"timing"`
	Input      Input            `yaml:"input"`
	Audio      Audio            `yaml:"audio"`
	Display    Display          `yaml:"display"`
}

// Physics defines the player body parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	RiseImpulse  float64 `yaml:"rise_impulse"` // negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MaxRiseSpeed float64 `yaml:"max_rise_speed"` // negative = up
	PlayerRadius float64 `yaml:"player_radius"`
}

// Barriers defines barrier spawning and motion.
type Barriers struct {
	WidthRatio       float64 `yaml:"width_ratio"` // fraction of viewport width
	MarginY          float64 `yaml:"margin_y"`
	BaseSpeed        float64 `yaml:"base_speed"`
	SpawnInterval    float64 `yaml:"spawn_interval"`
	FirstSpawnFactor float64 `yaml:"first_spawn_factor"` // spawn timer seed as a fraction of the interval
	MinGapHeight     float64 `yaml:"min_gap_height"`
	GapRatio         float64 `yaml:"gap_ratio"` // base gap as a fraction of viewport height
	DriftAmplitude   float64 `yaml:"drift_amplitude"`
	DriftFrequency   float64 `yaml:"drift_frequency"`
	SeedRange        float64 `yaml:"seed_range"`
}

// Timing defines frame clamping and transient effects.
type Timing struct {
	MaxDelta      float64 `yaml:"max_delta"`
	FlashDuration float64 `yaml:"flash_duration"`
	TrailLength   int     `yaml:"trail_length"`
}

// Input defines the input router parameters.
type Input struct {
	DebounceMS int     `yaml:"debounce_ms"`
	MuteRegion float64 `yaml:"mute_region"` // side of the top-left mute box in pixels
}

// Debounce returns the debounce window as a duration.
func (i Input) Debounce() time.Duration {
	return time.Duration(i.DebounceMS) * time.Millisecond
}

// Audio defines cue playback settings.
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// Display defines how the terminal maps cells to world pixels and how many
// stars the backdrop carries.
type Display struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	FarStars   int     `yaml:"far_stars"`
	NearStars  int     `yaml:"near_stars"`
}

// DifficultyConfig defines the step ramp applied as the score grows.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Every         int     `yaml:"every"` // ramp fires when score is a positive multiple of this
	SpeedStep     float64 `yaml:"speed_step"`
	SpeedCeiling  float64 `yaml:"speed_ceiling"`
	IntervalStep  float64 `yaml:"interval_step"`
	IntervalFloor float64 `yaml:"interval_floor"`
	GapStep       float64 `yaml:"gap_step"`
	GapFloor      float64 `yaml:"gap_floor"`
	InitialSteps  int     `yaml:"initial_steps"` // ramp steps applied at reset
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
