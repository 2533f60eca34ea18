package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/pressure-zone/internal/storage"
)

func TestLoadConfigPresets(t *testing.T) {
	t.Cleanup(func() {
		flagDifficulty = ""
		flagNoAudio = false
	})

	flagDifficulty = "fixed"
	flagNoAudio = true
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}
	if cfg.Audio.Enabled {
		t.Error("--no-audio should disable audio")
	}

	flagDifficulty = "brutal"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestDBPathPrecedence(t *testing.T) {
	t.Cleanup(func() { flagDBPath = "" })

	t.Setenv("PRESSURE_DB", "/tmp/env.db")
	if got := dbPath(); got != "/tmp/env.db" {
		t.Errorf("dbPath() = %q, expected env value", got)
	}

	flagDBPath = "/tmp/flag.db"
	if got := dbPath(); got != "/tmp/flag.db" {
		t.Errorf("dbPath() = %q, expected flag value", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.pressurezone/pressure.log")
	if err != nil {
		t.Fatalf("expandHome() error: %v", err)
	}
	if want := filepath.Join(home, ".pressurezone", "pressure.log"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}
	if got, _ := expandHome("/var/log/p.log"); got != "/var/log/p.log" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printScores(&out, store); err != nil {
		t.Fatalf("printScores() error: %v", err)
	}
	if !strings.Contains(out.String(), "No runs recorded yet") {
		t.Errorf("empty output = %q", out.String())
	}

	for _, s := range []int{4, 9} {
		if err := store.RecordRun(s); err != nil {
			t.Fatalf("RecordRun() error: %v", err)
		}
	}
	if err := store.SetBest(9); err != nil {
		t.Fatalf("SetBest() error: %v", err)
	}

	out.Reset()
	if err := printScores(&out, store); err != nil {
		t.Fatalf("printScores() error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "  1     9 ") || !strings.Contains(text, "  2     4 ") {
		t.Errorf("expected runs ordered best first, got:\n%s", text)
	}
	if !strings.Contains(text, "Best: 9") || !strings.Contains(text, "Top run: 9") || !strings.Contains(text, "Runs: 2") {
		t.Errorf("expected summary lines, got:\n%s", text)
	}
}

func TestClearScoresKeepsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	if err := store.RecordRun(6); err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}
	if err := store.SetBest(6); err != nil {
		t.Fatalf("SetBest() error: %v", err)
	}

	var out bytes.Buffer
	if err := clearScores(&out, store); err != nil {
		t.Fatalf("clearScores() error: %v", err)
	}
	if !strings.Contains(out.String(), "cleared") {
		t.Errorf("clearScores() output = %q", out.String())
	}

	scores, err := store.TopScores(storage.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(scores))
	}
	if top, _ := store.HighScore(storage.GameID); top != 0 {
		t.Errorf("HighScore() = %d after clear, expected 0", top)
	}
	if store.Best() != 6 {
		t.Errorf("Best() = %d, clearing runs must keep the stored best", store.Best())
	}
}
