//go:build !headless

package speaker

import (
	"testing"

	"github.com/vovakirdan/pressure-zone/internal/audio"
	"github.com/vovakirdan/pressure-zone/internal/config"
)

func TestSoundManagerUninitializedPlayIsSafe(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)
	sm.Play(audio.CuePass)
	sm.Close()
}
