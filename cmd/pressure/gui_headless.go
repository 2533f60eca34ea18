//go:build headless

package main

import (
	"errors"

	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/game"
)

var errNoWindow = errors.New("--gui is unavailable: built with the headless tag")

func runWindow(cfg config.Config, deps game.Deps) error {
	return errNoWindow
}
