// pressure is a one-button arcade game: keep the ship alive while barriers
// sweep across the midline from both sides.
//
// Usage:
//
//	pressure play            - Play in the terminal (or a window with --gui)
//	pressure scores          - Show the run history
//	pressure prefs           - Show or change stored preferences
//	pressure config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pressurezone/pressure.db)
//	--log <path>    - Set log file (default: ~/.pressurezone/pressure.log)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/game"
	"github.com/vovakirdan/pressure-zone/internal/storage"
)

const defaultLogPath = "~/.pressurezone/pressure.log"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

// The sqlite store is the persistent preference backend for the session.
var (
	_ game.Prefs       = (*storage.Store)(nil)
	_ game.RunRecorder = (*storage.Store)(nil)
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Pressure Zone - a one-button arcade game",
	Long: `Pressure Zone is a one-button arcade game. Tap to rise, let gravity
pull you down, and slip through the gaps of barriers sweeping across the
midline from both sides.

Available commands:
  play     - Start a game
  scores   - View the run history
  prefs    - Show or change best score and mute
  config   - Print the effective configuration

Examples:
  pressure play
  pressure play --difficulty hard
  pressure play --gui
  pressure scores --plain
  pressure prefs mute on`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the preferences database (default "+storage.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", defaultLogPath, "Path to the log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env and builds the file logger shared by all commands.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()

	w := io.Writer(io.Discard)
	if f, err := openLogFile(flagLogPath); err == nil {
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pressure",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("starting", "command", cmd.Name())
	return nil
}

// openLogFile opens path for appending. Stderr is never used because it
// would draw over the alt screen.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// dbPath resolves --db, then PRESSURE_DB, then the default location.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.DBPathFromEnv(storage.DefaultPath)
}

// openStore opens the preferences database.
func openStore() (*storage.Store, error) {
	path := dbPath()
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "path", path)
	return store, nil
}
