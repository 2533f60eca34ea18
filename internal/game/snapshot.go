package game

// PlayerView is the drawable part of the player body.
type PlayerView struct {
	X, Y, R float64
}

// BarrierView is the drawable geometry of one barrier.
type BarrierView struct {
	Left      float64
	Width     float64
	GapTop    float64
	GapBottom float64
	Direction Direction
}

// Snapshot is a read-only copy of everything a frontend needs to draw one
// frame. It shares no memory with the session.
type Snapshot struct {
	State    State
	Score    int
	Best     int
	Muted    bool
	Flash    float64 // overlay opacity in [0, 0.35]
	Width    float64
	Height   float64
	Level    int
	Player   PlayerView
	Trail    []float64
	Barriers []BarrierView
	Stars    []Star
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:  s.state,
		Score:  s.score,
		Best:   s.best,
		Muted:  s.muted,
		Flash:  s.FlashIntensity(),
		Width:  s.width,
		Height: s.height,
		Level:  s.ramp.Level(s.score),
		Player: PlayerView{X: s.player.X, Y: s.player.Y, R: s.player.Radius},
		Trail:  append([]float64(nil), s.trail...),
		Stars:  append([]Star(nil), s.stars.Stars()...),
	}

	barriers := s.field.Barriers()
	snap.Barriers = make([]BarrierView, len(barriers))
	for i, b := range barriers {
		snap.Barriers[i] = BarrierView{
			Left:      b.Left(),
			Width:     b.Width,
			GapTop:    b.GapTop(),
			GapBottom: b.GapBottom(),
			Direction: b.Dir,
		}
	}
	return snap
}
