package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pressure-zone/internal/audio/speaker"
	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/core"
	"github.com/vovakirdan/pressure-zone/internal/game"
	"github.com/vovakirdan/pressure-zone/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pressure Zone",
	Long: `Start a game. Tap (click) or press Space/Up to rise.
Gravity does the rest. Each barrier must reach the midline with its gap
around your ship.

Controls:
  Space/Up/W/K   - Rise (also starts and restarts)
  Click          - Rise, or toggle sound in the top-left corner
  M              - Toggle sound
  Ctrl+S         - Save a text screenshot
  Q/Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower, wider gaps, ramps up normally
  normal - The default ramp
  hard   - Starts ten steps into the ramp
  fixed  - No ramp, stays at the starting parameters

Examples:
  pressure play
  pressure play --difficulty easy
  pressure play --gui
  pressure play --config ./my-pressure.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
}

// loadConfig resolves the config file, preset and env overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	config.ApplyEnv(&cfg)
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	deps := game.Deps{Logger: logger}

	// Open preferences storage
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		// Continue with in-memory preferences - game still works
	} else {
		defer store.Close()
		deps.Prefs = store
		deps.Recorder = store
	}

	cues, closeAudio := speaker.Open(cfg.Audio, logger)
	defer closeAudio()
	deps.Cues = cues

	if flagGUI {
		logger.Info("starting window", "difficulty", flagDifficulty, "seed", flagSeed)
		return runWindow(cfg, deps)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	logger.Info("starting terminal game", "width", runtime.ScreenW, "height", runtime.ScreenH, "difficulty", flagDifficulty)
	if err := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Deps:    deps,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
