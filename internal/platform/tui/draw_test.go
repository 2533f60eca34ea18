package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pressure-zone/internal/core"
	"github.com/vovakirdan/pressure-zone/internal/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		State:  game.StatePlaying,
		Score:  3,
		Best:   7,
		Width:  800,
		Height: 600,
		Player: game.PlayerView{X: 400, Y: 300, R: 18},
		Barriers: []game.BarrierView{
			{Left: 100, Width: 100, GapTop: 200, GapBottom: 340, Direction: game.Rightward},
		},
	}
}

func TestPainterBarrier(t *testing.T) {
	p := Painter{CellW: 10, CellH: 20}
	s := core.NewScreen(80, 30)
	p.Draw(s, testSnapshot())

	tests := []struct {
		row  int
		want rune
	}{
		{5, BarrierChar},
		{9, GapCapTop}, // center 190, next row is in the gap
		{10, ' '},      // center 210
		{16, ' '},      // center 330
		{17, GapCapBottom},
		{25, BarrierChar},
	}
	for _, tc := range tests {
		for _, x := range []int{10, 19} {
			if got := s.Get(x, tc.row); got != tc.want {
				t.Errorf("cell (%d,%d) = %q, expected %q", x, tc.row, got, tc.want)
			}
		}
	}
	if s.Get(9, 5) == BarrierChar || s.Get(20, 5) == BarrierChar {
		t.Error("barrier drawn outside its columns")
	}
	if s.GetCell(10, 5).Color != core.ColorSteel {
		t.Error("barrier should be steel colored")
	}
}

func TestPainterPlayerAndHUD(t *testing.T) {
	p := Painter{CellW: 10, CellH: 20}
	s := core.NewScreen(80, 30)
	snap := testSnapshot()
	snap.Muted = true
	p.Draw(s, snap)

	if s.Get(40, 15) != PlayerChar {
		t.Errorf("player cell = %q, expected %q", s.Get(40, 15), PlayerChar)
	}
	if !strings.HasPrefix(s.Row(0), MuteOnIcon) {
		t.Errorf("row 0 = %q, expected mute icon first", s.Row(0))
	}
	if !strings.Contains(s.Row(0), " 3 ") || !strings.Contains(s.Row(0), "BEST 7") {
		t.Errorf("row 0 = %q, expected score and best", s.Row(0))
	}
}

func TestPainterOverlays(t *testing.T) {
	p := Painter{CellW: 10, CellH: 20}
	s := core.NewScreen(80, 30)

	snap := testSnapshot()
	snap.State = game.StateMenu
	p.Draw(s, snap)
	if !strings.Contains(s.String(), menuTitle) || !strings.Contains(s.String(), menuPrompt) {
		t.Error("menu overlay missing")
	}

	snap.State = game.StateGameOver
	p.Draw(s, snap)
	out := s.String()
	if !strings.Contains(out, gameOverTitle) || !strings.Contains(out, "Score 3   Best 7") {
		t.Error("game over overlay missing")
	}
	if strings.Contains(out, menuTitle) {
		t.Error("screen should be cleared between draws")
	}
}

func TestPainterClipsOffscreen(t *testing.T) {
	p := Painter{CellW: 10, CellH: 20}
	s := core.NewScreen(80, 30)
	snap := testSnapshot()
	snap.Barriers = []game.BarrierView{{Left: -600, Width: 528, GapTop: 200, GapBottom: 340}}
	snap.Stars = []game.Star{{X: -5, Y: 900}}
	// Must not panic
	p.Draw(s, snap)
	if s.Get(0, 5) == BarrierChar {
		t.Error("offscreen barrier should not be drawn")
	}
}

func TestFlashLevel(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{-1, 0},
		{0.05, 1},
		{0.2, 2},
		{0.35, 3},
	}
	for _, tc := range tests {
		if got := flashLevel(tc.in); got != tc.want {
			t.Errorf("flashLevel(%f) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "abc", core.ColorCyan)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	for _, flash := range []float64{0, 0.3} {
		out := RenderScreenFlash(s, flash)
		if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
			t.Errorf("flash %f: rendered output lost text: %q", flash, out)
		}
		if strings.Count(out, "\n") != 1 {
			t.Errorf("flash %f: expected 2 lines", flash)
		}
	}
}
