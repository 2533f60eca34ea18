//go:build headless

package speaker

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pressure-zone/internal/audio"
	"github.com/vovakirdan/pressure-zone/internal/config"
)

func TestHeadlessOpenIsSilent(t *testing.T) {
	p, closeFn := Open(config.Default().Audio, log.New(io.Discard))
	defer closeFn()
	if _, ok := p.(audio.Nop); !ok {
		t.Errorf("headless build should give Nop, got %T", p)
	}
}
