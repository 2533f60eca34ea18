//go:build !headless

package main

import (
	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/game"
	"github.com/vovakirdan/pressure-zone/internal/platform/window"
)

func runWindow(cfg config.Config, deps game.Deps) error {
	return window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		TPS:    flagFPS,
		Deps:   deps,
	})
}
