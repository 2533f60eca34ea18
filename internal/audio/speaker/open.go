// Package speaker plays audio cues through the system sound device.
//
// Building it links the oto backend, which needs cgo and ALSA headers on
// Linux. Build with the headless tag to replace it with a silent player.
package speaker

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pressure-zone/internal/audio"
	"github.com/vovakirdan/pressure-zone/internal/config"
)

// Open returns a ready Player for cfg. Disabled audio or a failed speaker
// init degrade to audio.Nop; the game never fails because of sound.
// The returned close func is always safe to call.
func Open(cfg config.Audio, logger *log.Logger) (audio.Player, func()) {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return audio.Nop{}, func() {}
	}
	return openDevice(cfg, logger)
}
