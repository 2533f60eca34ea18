package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/core"
)

// Direction is the horizontal direction a barrier travels in.
type Direction int

const (
	Rightward Direction = iota
	Leftward
)

// Sign returns +1 for Rightward and -1 for Leftward.
func (d Direction) Sign() float64 {
	if d == Leftward {
		return -1
	}
	return 1
}

// String returns the direction name.
func (d Direction) String() string {
	if d == Leftward {
		return "leftward"
	}
	return "rightward"
}

// Barrier is a full-height wall with a single gap the player must be inside
// when the wall's center crosses the screen midline.
type Barrier struct {
	Dir       Direction
	X         float64 // trailing edge: spawn side of the wall
	Width     float64
	GapY      float64 // gap center
	GapHeight float64
	Speed     float64 // captured at spawn
	Seed      float64 // drift phase offset
	Crossed   bool
}

// Center returns the structural center used for the midline test.
func (b Barrier) Center() float64 {
	if b.Dir == Leftward {
		return b.X - b.Width/2
	}
	return b.X + b.Width/2
}

// Left returns the barrier's left edge in world pixels.
func (b Barrier) Left() float64 {
	if b.Dir == Leftward {
		return b.X - b.Width
	}
	return b.X
}

// GapTop returns the top of the gap.
func (b Barrier) GapTop() float64 {
	return b.GapY - b.GapHeight/2
}

// GapBottom returns the bottom of the gap.
func (b Barrier) GapBottom() float64 {
	return b.GapY + b.GapHeight/2
}

// Contains reports whether y lies within the gap, edges included.
func (b Barrier) Contains(y float64) bool {
	return y >= b.GapTop() && y <= b.GapBottom()
}

// Crossing is the outcome of a barrier's one-time midline check.
type Crossing struct {
	Dir    Direction
	GapY   float64
	Passed bool
}

// Field manages spawning, motion and crossing checks of all barriers.
type Field struct {
	barriers  []Barrier
	crossings []Crossing
	rng       *rand.Rand
	cfg       config.Barriers
	width     float64
	height    float64
}

// NewField creates an empty field for a w×h viewport.
func NewField(cfg config.Barriers, rng *rand.Rand, w, h float64) *Field {
	return &Field{
		barriers:  make([]Barrier, 0, 8),
		crossings: make([]Crossing, 0, 4),
		rng:       rng,
		cfg:       cfg,
		width:     w,
		height:    h,
	}
}

// SetViewport updates the viewport dimensions. Barriers in flight keep
// their geometry; their gaps are re-clamped on the next update.
func (f *Field) SetViewport(w, h float64) {
	f.width = w
	f.height = h
}

// Clear removes all barriers.
func (f *Field) Clear() {
	f.barriers = f.barriers[:0]
}

// Len returns the number of active barriers.
func (f *Field) Len() int {
	return len(f.barriers)
}

// Barriers returns the active barriers in spawn order. The slice is only
// valid until the next Update.
func (f *Field) Barriers() []Barrier {
	return f.barriers
}

// Add appends a barrier as if it had just spawned.
func (f *Field) Add(b Barrier) {
	f.barriers = append(f.barriers, b)
}

// gapRange returns the valid interval for the gap center of the given height.
func (f *Field) gapRange(gapHeight float64) (lo, hi float64) {
	lo = f.cfg.MarginY + gapHeight/2
	hi = f.height - f.cfg.MarginY - gapHeight/2
	return lo, hi
}

// Spawn creates a barrier just off-screen with the current session speed
// and gap height, and returns it.
func (f *Field) Spawn(speed, gapHeight float64) Barrier {
	dir := Rightward
	if f.rng.Intn(2) == 1 {
		dir = Leftward
	}

	width := f.cfg.WidthRatio * f.width
	x := -width
	if dir == Leftward {
		x = f.width + width
	}

	lo, hi := f.gapRange(gapHeight)
	gapY := (lo + hi) / 2
	if hi > lo {
		gapY = lo + f.rng.Float64()*(hi-lo)
	}

	b := Barrier{
		Dir:       dir,
		X:         x,
		Width:     width,
		GapY:      gapY,
		GapHeight: gapHeight,
		Speed:     speed,
		Seed:      f.rng.Float64() * f.cfg.SeedRange,
	}
	f.barriers = append(f.barriers, b)
	return b
}

// Update advances every barrier by dt and returns the midline crossings
// detected this frame, in spawn order. The returned slice is reused by the
// next call.
func (f *Field) Update(dt, simTime, playerY float64) []Crossing {
	f.crossings = f.crossings[:0]
	mid := f.width / 2

	kept := f.barriers[:0]
	for _, b := range f.barriers {
		prev := b.Center()

		b.X += b.Dir.Sign() * b.Speed * dt

		b.GapY += math.Sin(simTime*f.cfg.DriftFrequency+b.Seed) * f.cfg.DriftAmplitude * dt
		lo, hi := f.gapRange(b.GapHeight)
		b.GapY = core.ClampRange(b.GapY, lo, hi)

		cur := b.Center()
		if !b.Crossed && core.Sign(prev-mid) != core.Sign(cur-mid) {
			b.Crossed = true
			f.crossings = append(f.crossings, Crossing{
				Dir:    b.Dir,
				GapY:   b.GapY,
				Passed: b.Contains(playerY),
			})
		}

		if f.offscreen(b) {
			continue
		}
		kept = append(kept, b)
	}
	f.barriers = kept

	return f.crossings
}

// offscreen reports whether b has fully left past the far edge.
func (f *Field) offscreen(b Barrier) bool {
	if b.Dir == Leftward {
		return b.X < -b.Width
	}
	return b.X > f.width+b.Width
}
