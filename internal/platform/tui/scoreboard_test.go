package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pressure-zone/internal/storage"
)

type fakeScores struct {
	scores []storage.ScoreEntry
	err    error
	calls  int
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.calls++
	return f.scores, f.err
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	high := 0
	for _, s := range f.scores {
		high = max(high, s.Score)
	}
	return &storage.GameStats{GameID: gameID, GamesCount: len(f.scores), HighScore: high}, nil
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{}, 0, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardRows(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	src := &fakeScores{scores: []storage.ScoreEntry{
		{GameID: storage.GameID, Score: 12, CreatedAt: now},
		{GameID: storage.GameID, Score: 5, CreatedAt: now},
	}}
	m := NewScoreboardModel(src, 14, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][0] != "#1" || rows[0][1] != "12" {
		t.Errorf("unexpected rows %v", rows)
	}

	view := m.View()
	if !strings.Contains(view, "Best    14") || !strings.Contains(view, "Runs    2") {
		t.Error("wide layout should show stats")
	}
}

func TestScoreboardError(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{err: errors.New("locked")}, 0, 100, 30)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load error should be shown")
	}
}

func TestScoreboardKeys(t *testing.T) {
	src := &fakeScores{}
	m := NewScoreboardModel(src, 0, 50, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if src.calls != 2 {
		t.Errorf("refresh should reload, TopScores called %d times", src.calls)
	}

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should produce tea.QuitMsg")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText() should not trim, got %q", got)
	}
}
