// Package audio defines the game's sound cues and synthesizes them as beep
// streamers. It never opens an output device; the speaker subpackage does.
package audio

import "time"

// Cue names a game sound.
type Cue int

const (
	CueRise  Cue = iota // player tapped while playing
	CuePass             // barrier passed
	CueDeath            // run ended
	cueCount
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueRise:
		return "rise"
	case CuePass:
		return "pass"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Tone describes how a cue is synthesized.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Volume   float64
}

var tones = [cueCount]Tone{
	CueRise:  {Freq: 650, Duration: 40 * time.Millisecond, Wave: WaveSine, Volume: 0.08},
	CuePass:  {Freq: 750, Duration: 50 * time.Millisecond, Wave: WaveSquare, Volume: 0.12},
	CueDeath: {Freq: 180, Duration: 160 * time.Millisecond, Wave: WaveSaw, Volume: 0.25},
}

// ToneFor returns the synthesis parameters of a cue.
func ToneFor(c Cue) (Tone, bool) {
	if c < 0 || c >= cueCount {
		return Tone{}, false
	}
	return tones[c], true
}

// Player plays cues.
type Player interface {
	Play(c Cue)
}

// Nop is the silent player used when audio is disabled or unavailable.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
