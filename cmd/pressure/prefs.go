package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored preferences",
	Long: `Show the persisted best score and mute flag.

Examples:
  pressure prefs
  pressure prefs mute on
  pressure prefs reset-best`,
	Args: cobra.NoArgs,
	RunE: runPrefsShow,
}

var prefsMuteCmd = &cobra.Command{
	Use:       "mute on|off",
	Short:     "Set the stored mute flag",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runPrefsMute,
}

var prefsResetBestCmd = &cobra.Command{
	Use:   "reset-best",
	Short: "Reset the best score to zero (run history is kept)",
	Args:  cobra.NoArgs,
	RunE:  runPrefsResetBest,
}

func init() {
	prefsCmd.AddCommand(prefsMuteCmd)
	prefsCmd.AddCommand(prefsResetBestCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("error opening preferences database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n", dbPath())
	fmt.Fprintf(out, "Best:     %d\n", store.Best())
	fmt.Fprintf(out, "Muted:    %t\n", store.Muted())
	return nil
}

func runPrefsMute(cmd *cobra.Command, args []string) error {
	var muted bool
	switch args[0] {
	case "on":
		muted = true
	case "off":
		muted = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("error opening preferences database: %w", err)
	}
	defer store.Close()

	if err := store.SetMuted(muted); err != nil {
		return err
	}
	logger.Info("mute changed", "muted", muted)
	fmt.Fprintf(cmd.OutOrStdout(), "Muted: %t\n", muted)
	return nil
}

func runPrefsResetBest(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("error opening preferences database: %w", err)
	}
	defer store.Close()

	if err := store.ResetBest(); err != nil {
		return err
	}
	logger.Info("best score reset")
	fmt.Fprintln(cmd.OutOrStdout(), "Best score reset.")
	return nil
}
