package config

import "math"

// Params are the session-wide values the difficulty ramp ratchets.
// Barriers capture Speed and GapHeight when they spawn.
type Params struct {
	Speed         float64
	SpawnInterval float64
	GapHeight     float64
}

// Ramp applies step difficulty increases as the score grows.
type Ramp struct {
	cfg DifficultyConfig
}

// NewRamp creates a ramp for the given difficulty config.
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Every > 0
}

// Base returns the starting parameters for a viewport of height h, with the
// configured initial steps already applied.
func (r *Ramp) Base(b Barriers, h float64) Params {
	p := Params{
		Speed:         b.BaseSpeed,
		SpawnInterval: b.SpawnInterval,
		GapHeight:     math.Max(b.MinGapHeight, h*b.GapRatio),
	}
	if r.IsEnabled() {
		for i := 0; i < r.cfg.InitialSteps; i++ {
			r.Step(&p)
		}
	}
	return p
}

// Due reports whether the ramp fires for a freshly reached score.
func (r *Ramp) Due(score int) bool {
	return r.IsEnabled() && score > 0 && score%r.cfg.Every == 0
}

// Step makes p one notch harder, respecting the ceiling and floors.
func (r *Ramp) Step(p *Params) {
	p.Speed = math.Min(r.cfg.SpeedCeiling, p.Speed+r.cfg.SpeedStep)
	p.SpawnInterval = math.Max(r.cfg.IntervalFloor, p.SpawnInterval-r.cfg.IntervalStep)
	p.GapHeight = math.Max(r.cfg.GapFloor, p.GapHeight-r.cfg.GapStep)
}

// Apply steps p if the score just reached a ramp point. It returns whether
// anything fired.
func (r *Ramp) Apply(score int, p *Params) bool {
	if !r.Due(score) {
		return false
	}
	r.Step(p)
	return true
}

// Level returns how many ramp steps a score has earned (plus initial steps).
func (r *Ramp) Level(score int) int {
	if !r.IsEnabled() {
		return 0
	}
	return r.cfg.InitialSteps + max(0, score)/r.cfg.Every
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
