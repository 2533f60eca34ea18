package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pressure-zone/internal/core"
	"github.com/vovakirdan/pressure-zone/internal/game"
)

// Visual characters for rendering
const (
	BarrierChar    = '█'
	GapCapTop      = '▀'
	GapCapBottom   = '▄'
	PlayerChar     = '●'
	PlayerWingL    = '◖'
	PlayerWingR    = '◗'
	TrailChar      = '·'
	FarStarChar    = '.'
	NearStarChar   = '∙'
	MuteOnIcon     = "[×]"
	MuteOffIcon    = "[♪]"
	MidlineChar    = '┊'
	menuTitle      = "P R E S S U R E   Z O N E"
	menuPrompt     = "Tap / Space to start"
	gameOverTitle  = "G A M E   O V E R"
	gameOverPrompt = "Tap to retry"
	overlayHelp    = "m: mute   q: quit"
)

// Painter draws session snapshots into a character grid. One cell covers
// CellW×CellH world pixels.
type Painter struct {
	CellW float64
	CellH float64
}

// cellX converts a world x to a column.
func (p Painter) cellX(x float64) int {
	return int(math.Floor(x / p.CellW))
}

// cellY converts a world y to a row.
func (p Painter) cellY(y float64) int {
	return int(math.Floor(y / p.CellH))
}

// centerY returns the world y at the middle of a row.
func (p Painter) centerY(row int) float64 {
	return (float64(row) + 0.5) * p.CellH
}

// Draw renders snap into dst, clearing it first.
func (p Painter) Draw(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	p.drawStars(dst, snap.Stars)
	p.drawMidline(dst, snap)
	for _, b := range snap.Barriers {
		p.drawBarrier(dst, b)
	}
	if snap.State == game.StatePlaying {
		p.drawTrail(dst, snap)
	}
	p.drawPlayer(dst, snap.Player)
	p.drawHUD(dst, snap)

	switch snap.State {
	case game.StateMenu:
		p.drawOverlay(dst, menuTitle, "", menuPrompt)
	case game.StateGameOver:
		p.drawOverlay(dst, gameOverTitle, fmt.Sprintf("Score %d   Best %d", snap.Score, snap.Best), gameOverPrompt)
	}
}

func (p Painter) drawStars(dst *core.Screen, stars []game.Star) {
	for _, s := range stars {
		ch, c := FarStarChar, core.ColorDim
		if s.Layer > 0 {
			ch, c = NearStarChar, core.ColorGray
		}
		dst.SetColored(p.cellX(s.X), p.cellY(s.Y), ch, c)
	}
}

func (p Painter) drawMidline(dst *core.Screen, snap game.Snapshot) {
	x := p.cellX(snap.Width / 2)
	for y := 0; y < dst.Height(); y += 2 {
		dst.SetColored(x, y, MidlineChar, core.ColorDim)
	}
}

// drawBarrier fills every cell of the barrier's columns whose center lies
// outside the gap, capping the rows that border the gap.
func (p Painter) drawBarrier(dst *core.Screen, b game.BarrierView) {
	x0 := max(0, p.cellX(b.Left))
	x1 := min(dst.Width()-1, p.cellX(b.Left+b.Width-1e-9))
	if x1 < x0 {
		return
	}

	for y := 0; y < dst.Height(); y++ {
		cy := p.centerY(y)
		if cy >= b.GapTop && cy <= b.GapBottom {
			continue
		}

		ch := BarrierChar
		switch {
		case cy < b.GapTop && p.centerY(y+1) >= b.GapTop:
			ch = GapCapTop
		case cy > b.GapBottom && p.centerY(y-1) <= b.GapBottom:
			ch = GapCapBottom
		}
		dst.DrawHLine(x0, y, x1-x0+1, ch, core.ColorSteel)
	}
}

func (p Painter) drawTrail(dst *core.Screen, snap game.Snapshot) {
	// Older samples sit further behind the player
	n := len(snap.Trail)
	px := p.cellX(snap.Player.X)
	for i, y := range snap.Trail {
		age := n - 1 - i
		if age == 0 {
			continue
		}
		dst.SetColored(px-1-age/4, p.cellY(y), TrailChar, core.ColorCyan)
	}
}

func (p Painter) drawPlayer(dst *core.Screen, pl game.PlayerView) {
	x := p.cellX(pl.X)
	y := p.cellY(pl.Y)
	dst.SetColored(x-1, y, PlayerWingL, core.ColorYellow)
	dst.SetColored(x, y, PlayerChar, core.ColorYellow)
	dst.SetColored(x+1, y, PlayerWingR, core.ColorYellow)
}

func (p Painter) drawHUD(dst *core.Screen, snap game.Snapshot) {
	icon, c := MuteOffIcon, core.ColorGray
	if snap.Muted {
		icon, c = MuteOnIcon, core.ColorRed
	}
	dst.DrawText(0, 0, icon, c)

	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)
	dst.DrawTextRight(dst.Width()-1, 0, fmt.Sprintf("BEST %d ", snap.Best), core.ColorGray)
	if snap.Level > 0 {
		dst.DrawTextRight(dst.Width()-1, 1, fmt.Sprintf("LV %d ", snap.Level), core.ColorDim)
	}
}

func (p Painter) drawOverlay(dst *core.Screen, title, detail, prompt string) {
	y := dst.Height() * 2 / 5

	// Blank panel so barriers do not run through the text
	w := 0
	for _, line := range []string{title, detail, prompt, overlayHelp} {
		w = max(w, len([]rune(line)))
	}
	w = core.Clamp(w+4, 0, dst.Width())
	dst.DrawRect(core.NewRect((dst.Width()-w)/2, y-1, w, 7), ' ', core.ColorDefault)

	dst.DrawTextCentered(y, title, core.ColorBrightWhite)
	if detail != "" {
		dst.DrawTextCentered(y+2, detail, core.ColorWhite)
	}
	dst.DrawTextCentered(y+4, prompt, core.ColorGray)
	dst.DrawTextCentered(y+5, overlayHelp, core.ColorDim)
}
