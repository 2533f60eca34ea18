package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\nyaml: %+v\ncode: %+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 900\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != 900 {
		t.Errorf("Gravity = %f, expected 900", cfg.Physics.Gravity)
	}
	if cfg.Physics.RiseImpulse != -360 {
		t.Errorf("RiseImpulse should keep default -360, got %f", cfg.Physics.RiseImpulse)
	}
	if cfg.Barriers.BaseSpeed != 280 {
		t.Errorf("BaseSpeed should keep default 280, got %f", cfg.Barriers.BaseSpeed)
	}
}

func TestParseSanitizes(t *testing.T) {
	data := []byte(`
timing:
  max_delta: 0
barriers:
  spawn_interval: -1
difficulty:
  every: 0
audio:
  master_volume: 4
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Timing.MaxDelta != 0.033 {
		t.Errorf("MaxDelta = %f, expected default 0.033", cfg.Timing.MaxDelta)
	}
	if cfg.Barriers.SpawnInterval != 1.25 {
		t.Errorf("SpawnInterval = %f, expected default 1.25", cfg.Barriers.SpawnInterval)
	}
	if cfg.Difficulty.Every != 5 {
		t.Errorf("Every = %d, expected default 5", cfg.Difficulty.Every)
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("MasterVolume = %f, expected clamp to 1", cfg.Audio.MasterVolume)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("physics: [unclosed")); err == nil {
		t.Error("Parse() should fail on invalid YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("barriers:\n  base_speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Barriers.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %f, expected 300", cfg.Barriers.BaseSpeed)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit config")
	}
	if cfg.Physics.Gravity != Default().Physics.Gravity {
		t.Error("Load() should still return defaults on error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1200 {
		t.Errorf("expected embedded gravity 1200, got %f", cfg.Physics.Gravity)
	}

	// Local ./configs file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", fileName), []byte("physics:\n  gravity: 1000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Physics.Gravity != 1000 {
		t.Errorf("expected local gravity 1000, got %f", cfg.Physics.Gravity)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".pressurezone", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, fileName), []byte("physics:\n  gravity: 800\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Physics.Gravity != 800 {
		t.Errorf("expected user gravity 800, got %f", cfg.Physics.Gravity)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled defaults should parse back to defaults")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		steps   int
		speed   float64
		minGap  float64
	}{
		{DifficultyEasy, true, 0, 240, 180},
		{DifficultyNormal, true, 0, 280, 140},
		{DifficultyHard, true, 10, 280, 140},
		{DifficultyFixed, false, 0, 280, 140},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialSteps != tc.steps {
				t.Errorf("InitialSteps = %d, expected %d", cfg.Difficulty.InitialSteps, tc.steps)
			}
			if cfg.Barriers.BaseSpeed != tc.speed {
				t.Errorf("BaseSpeed = %f, expected %f", cfg.Barriers.BaseSpeed, tc.speed)
			}
			if cfg.Barriers.MinGapHeight != tc.minGap {
				t.Errorf("MinGapHeight = %f, expected %f", cfg.Barriers.MinGapHeight, tc.minGap)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should map to DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "40")
	t.Setenv(EnvSampleRate, "48000")

	cfg := Default()
	ApplyEnv(&cfg)

	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by env")
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("MasterVolume = %f, expected 0.4", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, expected 48000", cfg.Audio.SampleRate)
	}
}

func TestApplyEnvMalformedIgnored(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSampleRate, "-5")

	cfg := Default()
	ApplyEnv(&cfg)

	if !reflect.DeepEqual(cfg.Audio, Default().Audio) {
		t.Errorf("malformed env should leave audio untouched, got %+v", cfg.Audio)
	}
}

func TestDBPathFromEnv(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	if got := DBPathFromEnv("fallback.db"); got != "fallback.db" {
		t.Errorf("DBPathFromEnv() = %q, expected fallback", got)
	}
	t.Setenv(EnvDBPath, "/tmp/x.db")
	if got := DBPathFromEnv("fallback.db"); got != "/tmp/x.db" {
		t.Errorf("DBPathFromEnv() = %q, expected env value", got)
	}
}
