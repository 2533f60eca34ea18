package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/core"
	"github.com/vovakirdan/pressure-zone/internal/game"
)

// Options configure a terminal game run.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // ScreenW/ScreenH in cells
	Deps    game.Deps
	Clock   core.Clock // nil means the system clock
}

// Model is the Bubble Tea model running one Pressure Zone session.
type Model struct {
	session  *game.Session
	router   *game.Router
	timer    *core.FrameTimer
	screen   *core.Screen
	painter  Painter
	keys     *KeyMapper
	clock    core.Clock
	logger   *log.Logger
	tickRate int
	quitting bool
}

// NewModel creates a new Bubble Tea model and its session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Deps.Logger == nil {
		opts.Deps.Logger = log.New(io.Discard)
	}

	painter := Painter{CellW: opts.Config.Display.CellWidth, CellH: opts.Config.Display.CellHeight}
	session := game.NewSession(opts.Config,
		float64(cfg.ScreenW)*painter.CellW, float64(cfg.ScreenH)*painter.CellH,
		cfg.Seed, opts.Deps)

	return Model{
		session:  session,
		router:   game.NewRouter(session, opts.Config.Input.Debounce(), opts.Config.Input.MuteRegion),
		timer:    core.NewFrameTimer(opts.Config.Timing.MaxDelta),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:  painter,
		keys:     NewKeyMapper(),
		clock:    opts.Clock,
		logger:   opts.Deps.Logger,
		tickRate: cfg.TickRate,
	}
}

// Session exposes the running session.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionShot:
		m.saveScreenshot()
	case core.ActionMute:
		// Same path as tapping the mute box
		m.route(game.Event{Kind: game.EventPointer, X: 0, Y: 0, At: m.clock.Now()})
	case core.ActionRise:
		m.route(game.Event{Kind: game.EventKey, Key: riseKeyName(msg), At: m.clock.Now()})
	}
	return m, nil
}

// handleMouse maps a left click to a pointer event at the cell center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.route(game.Event{
		Kind: game.EventPointer,
		X:    (float64(msg.X) + 0.5) * m.painter.CellW,
		Y:    (float64(msg.Y) + 0.5) * m.painter.CellH,
		At:   m.clock.Now(),
	})
	return m, nil
}

func (m Model) route(ev game.Event) {
	outcome := m.router.Route(ev)
	m.logger.Debug("input", "kind", ev.Kind, "outcome", outcome, "state", m.session.State())
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(float64(msg.Width)*m.painter.CellW, float64(msg.Height)*m.painter.CellH)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Frame(m.timer.Tick(now))
	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.painter.Draw(m.screen, m.session.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".pressurezone", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pressure_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	m.painter.Draw(m.screen, snap)
	return RenderScreenFlash(m.screen, snap.Flash)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps are mouse clicks
	)

	_, err := p.Run()
	return err
}
