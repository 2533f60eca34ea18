//go:build !headless

package speaker

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pressure-zone/internal/audio"
	"github.com/vovakirdan/pressure-zone/internal/config"
)

// SoundManager plays cues through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	master      float64
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize before Play.
func NewSoundManager(cfg config.Audio) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		master: cfg.MasterVolume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := beepspeaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return err
	}

	beepspeaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play mixes a cue in and returns immediately.
func (sm *SoundManager) Play(c audio.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := audio.Synthesize(c, sm.master, sm.rate)
	if s == nil {
		return
	}

	beepspeaker.Lock()
	sm.mixer.Add(s)
	beepspeaker.Unlock()
}

// Close stops playback and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	beepspeaker.Lock()
	sm.mixer.Clear()
	beepspeaker.Unlock()
	beepspeaker.Close()
	sm.initialized = false
}

func openDevice(cfg config.Audio, logger *log.Logger) (audio.Player, func()) {
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Nop{}, func() {}
	}
	logger.Debug("audio ready", "sample_rate", cfg.SampleRate)
	return sm, sm.Close
}
