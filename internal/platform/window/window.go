// Package window runs Pressure Zone in a desktop window using ebiten.
// It polls input each tick, routes it through the same game.Router as the
// terminal frontend and draws the session snapshot with vector shapes.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/core"
	"github.com/vovakirdan/pressure-zone/internal/game"
)

const (
	defaultWidth  = 480
	defaultHeight = 720
	title         = "Pressure Zone"
)

var (
	colorBackground = color.RGBA{0x07, 0x0b, 0x14, 0xff}
	colorFarStar    = color.RGBA{0x5a, 0x66, 0x80, 0xff}
	colorNearStar   = color.RGBA{0xc8, 0xd2, 0xe6, 0xff}
	colorBarrier    = color.RGBA{0x3d, 0x6f, 0x9e, 0xff}
	colorGapEdge    = color.RGBA{0x8f, 0xd3, 0xff, 0xff}
	colorMidline    = color.RGBA{0xff, 0xff, 0xff, 0x18}
	colorShip       = color.RGBA{0xff, 0xd1, 0x4a, 0xff}
	colorTrail      = color.RGBA{0x4d, 0xe1, 0xff, 0x80}
	colorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorSubtle     = color.RGBA{0xa0, 0xa8, 0xb8, 0xff}
	colorMuted      = color.RGBA{0xff, 0x55, 0x55, 0xff}
)

// Options configure a windowed game run.
type Options struct {
	Config config.Config
	Seed   int64
	TPS    int
	Deps   game.Deps
	Clock  core.Clock // nil means the system clock
}

// Game implements ebiten.Game around a session.
type Game struct {
	session *game.Session
	router  *game.Router
	timer   *core.FrameTimer
	clock   core.Clock
	logger  *log.Logger
	face    *text.GoTextFaceSource

	width  int
	height int
}

// NewGame creates the window game and its session.
func NewGame(opts Options) (*Game, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Deps.Logger == nil {
		opts.Deps.Logger = log.New(io.Discard)
	}

	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	session := game.NewSession(opts.Config, defaultWidth, defaultHeight, opts.Seed, opts.Deps)
	return &Game{
		session: session,
		router:  game.NewRouter(session, opts.Config.Input.Debounce(), opts.Config.Input.MuteRegion),
		timer:   core.NewFrameTimer(opts.Config.Timing.MaxDelta),
		clock:   opts.Clock,
		logger:  opts.Deps.Logger,
		face:    face,
		width:   defaultWidth,
		height:  defaultHeight,
	}, nil
}

// Update polls input and advances the simulation by one clamped frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Freeze while unfocused; the first frame back starts from dt 0
	if !ebiten.IsFocused() {
		g.timer.Reset()
		return nil
	}

	now := g.clock.Now()
	for _, ev := range pollEvents(now) {
		outcome := g.router.Route(ev)
		g.logger.Debug("input", "kind", ev.Kind, "outcome", outcome, "state", g.session.State())
	}

	g.session.Frame(g.timer.Tick(now))
	return nil
}

// pollEvents collects this tick's fresh presses as router events.
func pollEvents(now time.Time) []game.Event {
	var events []game.Event

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, game.Event{Kind: game.EventKey, Key: "space", At: now})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		events = append(events, game.Event{Kind: game.EventKey, Key: "up", At: now})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		events = append(events, game.Event{Kind: game.EventPointer, X: 0, Y: 0, At: now})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, game.Event{Kind: game.EventPointer, X: float64(x), Y: float64(y), At: now})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, game.Event{Kind: game.EventPointer, X: float64(x), Y: float64(y), At: now})
	}
	return events
}

// Layout follows the window size one-to-one and resizes the session when
// it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(colorBackground)

	for _, s := range snap.Stars {
		c := colorFarStar
		if s.Layer > 0 {
			c = colorNearStar
		}
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Size), float32(s.Size), c, false)
	}

	mid := float32(snap.Width / 2)
	vector.StrokeLine(screen, mid, 0, mid, float32(snap.Height), 1, colorMidline, false)

	for _, b := range snap.Barriers {
		g.drawBarrier(screen, b, snap.Height)
	}

	if snap.State == game.StatePlaying && len(snap.Trail) > 1 {
		x := float32(snap.Player.X)
		for i := 1; i < len(snap.Trail); i++ {
			vector.StrokeLine(screen, x, float32(snap.Trail[i-1]), x, float32(snap.Trail[i]), 2, colorTrail, true)
		}
	}

	vector.DrawFilledCircle(screen, float32(snap.Player.X), float32(snap.Player.Y), float32(snap.Player.R), colorShip, true)

	g.drawHUD(screen, snap)

	switch snap.State {
	case game.StateMenu:
		g.drawOverlay(screen, snap, "PRESSURE ZONE", "", "Tap to start")
	case game.StateGameOver:
		g.drawOverlay(screen, snap, "GAME OVER", fmt.Sprintf("Score %d  Best %d", snap.Score, snap.Best), "Tap to retry")
	}

	if snap.Flash > 0 {
		a := uint8(snap.Flash * 255)
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), color.RGBA{a, a, a, a}, false)
	}
}

func (g *Game) drawBarrier(screen *ebiten.Image, b game.BarrierView, height float64) {
	x, w := float32(b.Left), float32(b.Width)
	top, bottom := float32(b.GapTop), float32(b.GapBottom)

	vector.DrawFilledRect(screen, x, 0, w, top, colorBarrier, false)
	vector.DrawFilledRect(screen, x, bottom, w, float32(height)-bottom, colorBarrier, false)
	vector.StrokeLine(screen, x, top, x+w, top, 2, colorGapEdge, false)
	vector.StrokeLine(screen, x, bottom, x+w, bottom, 2, colorGapEdge, false)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, size float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{Source: g.face, Size: size}, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	icon, c := "SND", colorSubtle
	if snap.Muted {
		icon, c = "OFF", colorMuted
	}
	g.drawText(screen, icon, 10, 16, 10, c, text.AlignStart)

	g.drawText(screen, fmt.Sprintf("%d", snap.Score), snap.Width/2, 24, 28, colorText, text.AlignCenter)
	g.drawText(screen, fmt.Sprintf("BEST %d", snap.Best), snap.Width-10, 16, 10, colorSubtle, text.AlignEnd)
	if snap.Level > 0 {
		g.drawText(screen, fmt.Sprintf("LV %d", snap.Level), snap.Width-10, 32, 10, colorSubtle, text.AlignEnd)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap game.Snapshot, heading, detail, prompt string) {
	y := snap.Height * 0.4
	g.drawText(screen, heading, snap.Width/2, y, 24, colorText, text.AlignCenter)
	if detail != "" {
		g.drawText(screen, detail, snap.Width/2, y+48, 12, colorText, text.AlignCenter)
	}
	g.drawText(screen, prompt, snap.Width/2, y+84, 12, colorSubtle, text.AlignCenter)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
