package game

import "math/rand"

// Star is a single backdrop point. Layer 0 is far, 1 is near.
type Star struct {
	X, Y  float64
	Size  float64
	Layer int
}

type starLayer struct {
	speed float64
	size  float64
}

var starLayers = [...]starLayer{
	{speed: 20, size: 1.5},
	{speed: 40, size: 2.2},
}

// Starfield is a two-layer parallax backdrop that scrolls left and wraps.
type Starfield struct {
	stars  []Star
	rng    *rand.Rand
	counts [len(starLayers)]int
	width  float64
	height float64
}

// NewStarfield creates a starfield with far and near star counts.
func NewStarfield(rng *rand.Rand, far, near int) *Starfield {
	return &Starfield{rng: rng, counts: [len(starLayers)]int{far, near}}
}

// Generate scatters a fresh set of stars over a w×h viewport.
func (s *Starfield) Generate(w, h float64) {
	s.width = w
	s.height = h
	s.stars = s.stars[:0]
	for layer, n := range s.counts {
		for i := 0; i < n; i++ {
			s.stars = append(s.stars, Star{
				X:     s.rng.Float64() * w,
				Y:     s.rng.Float64() * h,
				Size:  starLayers[layer].size,
				Layer: layer,
			})
		}
	}
}

// Update scrolls the stars by dt seconds.
func (s *Starfield) Update(dt float64) {
	for i := range s.stars {
		st := &s.stars[i]
		st.X -= starLayers[st.Layer].speed * dt
		if st.X < 0 {
			st.X += s.width
			st.Y = s.rng.Float64() * s.height
		}
	}
}

// Stars returns the live stars.
func (s *Starfield) Stars() []Star {
	return s.stars
}
