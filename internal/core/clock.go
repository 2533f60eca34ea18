package core

import (
	"sync"
	"time"
)

// Clock supplies monotonically increasing timestamps to the frame driver
// and the input router.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, which carries a monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// FrameTimer turns successive frame timestamps into a clamped delta-time.
// The clamp bounds how far a single step can move the player or a barrier,
// so a frame hitch cannot tunnel anything through a boundary or a gap.
type FrameTimer struct {
	MaxDelta float64 // seconds

	last    time.Time
	started bool
}

// NewFrameTimer creates a timer clamping deltas to maxDelta seconds.
func NewFrameTimer(maxDelta float64) *FrameTimer {
	return &FrameTimer{MaxDelta: maxDelta}
}

// Tick records now and returns the seconds elapsed since the previous tick,
// clamped to [0, MaxDelta]. The first tick returns 0.
func (f *FrameTimer) Tick(now time.Time) float64 {
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	dt := now.Sub(f.last).Seconds()
	f.last = now
	return ClampF(dt, 0, f.MaxDelta)
}

// Reset forgets the previous timestamp so the next tick returns 0.
func (f *FrameTimer) Reset() {
	f.started = false
}
