package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// decayFloor is the gain every cue decays to by the end of its duration.
const decayFloor = 0.0001

// oscillator generates a raw periodic wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// expDecay scales a stream from gain down to decayFloor exponentially over
// total samples, like an exponential gain ramp on a web audio node.
type expDecay struct {
	streamer beep.Streamer
	gain     float64
	ratio    float64 // per-sample multiplier
	position int
	total    int
}

// NewDecay wraps s with an exponential decay from gain to near silence.
func NewDecay(s beep.Streamer, gain float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	ratio := 1.0
	if total > 0 && gain > 0 {
		ratio = math.Pow(decayFloor/gain, 1/float64(total))
	}
	return &expDecay{
		streamer: s,
		gain:     gain,
		ratio:    ratio,
		total:    total,
	}
}

func (e *expDecay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		samples[i][0] *= e.gain
		samples[i][1] *= e.gain
		e.gain *= e.ratio
		e.position++
	}
	return n, ok
}

func (e *expDecay) Err() error { return e.streamer.Err() }

// newVolume applies a linear master volume.
// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synthesize builds the streamer for a cue at the given master volume.
// Unknown cues give nil.
func Synthesize(c Cue, master float64, rate beep.SampleRate) beep.Streamer {
	tone, ok := ToneFor(c)
	if !ok {
		return nil
	}
	osc := NewOscillator(tone.Freq, tone.Duration, tone.Wave, rate)
	shaped := NewDecay(osc, tone.Volume, tone.Duration, rate)
	return newVolume(shaped, master)
}
