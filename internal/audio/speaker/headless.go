//go:build headless

package speaker

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pressure-zone/internal/audio"
	"github.com/vovakirdan/pressure-zone/internal/config"
)

func openDevice(cfg config.Audio, logger *log.Logger) (audio.Player, func()) {
	logger.Warn("built without a sound device, playing silently")
	return audio.Nop{}, func() {}
}
