// geocoin is a location-based coin collecting game for the terminal.
//
// Usage:
//
//	geocoin play             - Walk the map and collect coins
//	geocoin serve            - Start SSH server for remote play
//	geocoin scores           - Show the best recorded runs
//	geocoin spawns           - Show which caches spawn around a cell
//	geocoin config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search order)
//	--density <name>  - Spawn density preset: sparse, normal, dense
//	--db <path>       - Set database path (default: ~/.geocoin/runs.db)
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geocoin/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDensity string
	flagDBPath  string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geocoin",
	Short: "Geocoin - collect coins from caches around you",
	Long: `Geocoin is a terminal game on a grid laid over real coordinates.
Caches of coins appear deterministically around the player; collect them,
drop them elsewhere, and undo your steps.

Available commands:
  play     - Start a game in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs
  spawns   - Inspect cache spawns around a cell
  config   - Print the effective configuration

Examples:
  geocoin play
  geocoin play --name ana --lat 36.9895 --lng -122.0628
  geocoin serve --ssh :2222
  geocoin spawns --cell 0:0 --radius 3
  geocoin --density dense play`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDensity, "density", "", "Spawn density preset: sparse, normal, dense")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geocoin/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(spawnsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration and applies the density preset.
func loadConfig() (config.Config, config.Source, error) {
	cfg, src, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.Config{}, src, err
	}
	if err := config.ApplyPreset(&cfg, config.DensityPreset(flagDensity)); err != nil {
		return config.Config{}, src, err
	}
	return cfg, src, nil
}

// newLogger returns a logger writing to w at the level chosen by --debug.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openDebugLog opens ~/.geocoin/debug.log for appending.
// The terminal belongs to the game while it runs, so logs go to a file.
func openDebugLog() (*os.File, error) {
	path, err := config.ExpandHome("~/.geocoin/debug.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
