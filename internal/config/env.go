package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvAudioEnabled = "PRESSURE_AUDIO_ENABLED"
	EnvMasterVolume = "PRESSURE_MASTER_VOLUME" // 0-100
	EnvSampleRate   = "PRESSURE_SAMPLE_RATE"
	EnvDBPath       = "PRESSURE_DB"
)

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the process environment win.
func LoadDotEnv() {
	//nolint:errcheck // A missing .env is the common case
	godotenv.Load()
}

// ApplyEnv overrides audio settings from the environment.
// Malformed values are ignored.
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.MasterVolume = clampF(float64(val)/100.0, 0, 1)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.Audio.SampleRate = val
		}
	}
}

// DBPathFromEnv returns PRESSURE_DB, or fallback when unset.
func DBPathFromEnv(fallback string) string {
	if p := os.Getenv(EnvDBPath); p != "" {
		return p
	}
	return fallback
}
