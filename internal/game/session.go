// Package game implements the Pressure Zone simulation: a player body that
// rises on tap and falls under gravity, a field of barriers sweeping across
// the screen from either side, and the Menu/Playing/GameOver state machine
// that scores midline crossings.
//
// The package is frontend-agnostic. A frontend routes input through a
// Router, calls Frame once per display frame with a clamped delta, and draws
// from Snapshot.
package game

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pressure-zone/internal/audio"
	"github.com/vovakirdan/pressure-zone/internal/config"
)

// State is the session's position in the game state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Deps are the session's external collaborators. Nil fields get silent
// in-memory defaults.
type Deps struct {
	Prefs    Prefs
	Cues     audio.Player
	Logger   *log.Logger
	Recorder RunRecorder
}

// Session owns all simulation state. It is not safe for concurrent use;
// the frontend's update loop is its only caller.
type Session struct {
	cfg    config.Config
	ramp   *config.Ramp
	params config.Params

	state State
	score int
	best  int
	muted bool

	spawnTimer float64
	simTime    float64
	flash      float64

	width  float64
	height float64

	player *Player
	field  *Field
	stars  *Starfield
	trail  []float64

	prefs    Prefs
	cues     audio.Player
	logger   *log.Logger
	recorder RunRecorder
}

// NewSession creates a session in the Menu state for a w×h viewport.
// Best score and mute flag are read from deps.Prefs once, here.
func NewSession(cfg config.Config, w, h float64, seed int64, deps Deps) *Session {
	if deps.Prefs == nil {
		deps.Prefs = NewMemoryPrefs(0, false)
	}
	if deps.Cues == nil {
		deps.Cues = audio.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:      cfg,
		ramp:     config.NewRamp(cfg.Difficulty),
		state:    StateMenu,
		best:     max(0, deps.Prefs.Best()),
		muted:    deps.Prefs.Muted(),
		width:    w,
		height:   h,
		player:   NewPlayer(cfg.Physics),
		field:    NewField(cfg.Barriers, rng, w, h),
		stars:    NewStarfield(rng, cfg.Display.FarStars, cfg.Display.NearStars),
		trail:    make([]float64, 0, cfg.Timing.TrailLength),
		prefs:    deps.Prefs,
		cues:     deps.Cues,
		logger:   deps.Logger,
		recorder: deps.Recorder,
	}
	s.reset()
	s.stars.Generate(w, h)
	return s
}

// reset restores a fresh run without changing state.
func (s *Session) reset() {
	s.score = 0
	s.params = s.ramp.Base(s.cfg.Barriers, s.height)
	s.spawnTimer = 0
	s.flash = 0
	s.field.Clear()
	s.trail = s.trail[:0]
	s.player.Reset(s.width/2, s.height/2)
}

// Start resets the run and enters Playing.
func (s *Session) Start() {
	from := s.state
	s.reset()
	s.state = StatePlaying
	s.spawnTimer = s.params.SpawnInterval * s.cfg.Barriers.FirstSpawnFactor
	s.logger.Debug("state change", "from", from, "to", s.state,
		"speed", s.params.Speed, "gap", s.params.GapHeight)
}

// Primary handles the single debounced primary action: it starts a run
// from Menu or GameOver and applies a rise impulse while Playing.
func (s *Session) Primary() {
	switch s.state {
	case StateMenu, StateGameOver:
		s.Start()
	case StatePlaying:
		s.player.ApplyImpulse()
		s.cue(audio.CueRise)
	}
}

// ToggleMute flips the mute flag and persists it immediately.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
	if err := s.prefs.SetMuted(s.muted); err != nil {
		s.logger.Warn("cannot persist mute flag", "error", err)
	}
	s.logger.Debug("mute toggled", "muted", s.muted)
}

// GameOver ends the current run. It is a no-op unless the session is
// Playing, so simultaneous failures fire the death effects once.
func (s *Session) GameOver() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.flash = s.cfg.Timing.FlashDuration
	s.cue(audio.CueDeath)

	if s.score > s.best {
		s.best = s.score
		if err := s.prefs.SetBest(s.best); err != nil {
			s.logger.Warn("cannot persist best score", "error", err)
		}
	}
	if s.recorder != nil && s.score > 0 {
		if err := s.recorder.RecordRun(s.score); err != nil {
			s.logger.Warn("cannot record run", "error", err)
		}
	}
	s.logger.Debug("state change", "from", StatePlaying, "to", s.state,
		"score", s.score, "best", s.best)
}

// Frame advances the simulation by dt seconds. Callers clamp dt.
func (s *Session) Frame(dt float64) {
	s.simTime += dt
	s.stars.Update(dt)
	s.flash = math.Max(0, s.flash-dt)

	if s.state != StatePlaying {
		return
	}

	s.player.Integrate(dt)
	if s.player.OutOfBounds(s.height) {
		s.GameOver()
		return
	}

	s.spawnTimer += dt
	if s.spawnTimer >= s.params.SpawnInterval {
		s.spawnTimer = 0
		s.field.Spawn(s.params.Speed, s.params.GapHeight)
	}

	for _, c := range s.field.Update(dt, s.simTime, s.player.Y) {
		if s.state != StatePlaying {
			break
		}
		if !c.Passed {
			s.GameOver()
			continue
		}
		s.score++
		s.cue(audio.CuePass)
		if s.ramp.Apply(s.score, &s.params) {
			s.logger.Debug("difficulty up", "score", s.score,
				"speed", s.params.Speed, "interval", s.params.SpawnInterval, "gap", s.params.GapHeight)
		}
	}

	if s.state == StatePlaying {
		s.pushTrail(s.player.Y)
	}
}

func (s *Session) pushTrail(y float64) {
	limit := s.cfg.Timing.TrailLength
	if limit <= 0 {
		return
	}
	if len(s.trail) >= limit {
		copy(s.trail, s.trail[1:])
		s.trail = s.trail[:limit-1]
	}
	s.trail = append(s.trail, y)
}

// Resize adapts to a new viewport without touching score or state.
// The player is recentered in every state. While playing its velocity and
// trail are dropped as well, so the next frame cannot carry it out of a
// smaller viewport.
func (s *Session) Resize(w, h float64) {
	s.width = w
	s.height = h
	s.field.SetViewport(w, h)
	s.player.X = w / 2
	s.player.Y = h / 2
	if s.state == StatePlaying {
		s.player.VY = 0
		s.trail = s.trail[:0]
	}
	s.stars.Generate(w, h)
}

// cue plays a sound unless muted.
func (s *Session) cue(c audio.Cue) {
	if s.muted {
		return
	}
	s.cues.Play(c)
}

// FlashIntensity returns the opacity of the death flash overlay.
func (s *Session) FlashIntensity() float64 {
	return math.Min(0.35, s.flash*1.8)
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen so far.
func (s *Session) Best() int { return s.best }

// Muted reports whether cues are muted.
func (s *Session) Muted() bool { return s.muted }

// Params returns the current difficulty parameters.
func (s *Session) Params() config.Params { return s.params }

// Player returns the player body.
func (s *Session) Player() *Player { return s.player }

// Field returns the barrier field.
func (s *Session) Field() *Field { return s.field }

// Size returns the viewport dimensions.
func (s *Session) Size() (w, h float64) { return s.width, s.height }
