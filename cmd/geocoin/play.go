package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geocoin/internal/core"
	"github.com/vovakirdan/geocoin/internal/game"
	"github.com/vovakirdan/geocoin/internal/grid"
	"github.com/vovakirdan/geocoin/internal/platform/tui"
	"github.com/vovakirdan/geocoin/internal/storage"
)

var (
	flagName string
	flagLat  float64
	flagLng  float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play geocoin in this terminal",
	Long: `Start a game centred on the configured origin, or on --lat/--lng.

Controls:
  Arrows/WASD  - Move one cell
  C            - Collect the first coin of the cache here
  X            - Deposit the last collected coin here
  Ctrl+S       - Save a checkpoint
  U            - Undo the last action or checkpoint
  R            - Reset the world
  ?            - Toggle help
  Q/Ctrl+C     - Quit and record the run

Examples:
  geocoin play
  geocoin play --name ana
  geocoin play --lat 51.5007 --lng -0.1246
  geocoin play --config ./my-geocoin.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", defaultPlayerName(), "Player name recorded with the run")
	playCmd.Flags().Float64Var(&flagLat, "lat", 0, "Start latitude (default: config origin)")
	playCmd.Flags().Float64Var(&flagLng, "lng", 0, "Start longitude (default: config origin)")
	playCmd.MarkFlagsRequiredTogether("lat", "lng")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagDebug {
		f, logErr := openDebugLog()
		if logErr != nil {
			return fmt.Errorf("cannot open debug log: %w", logErr)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "geocoin")
	logger.Debug("config loaded", "source", src)

	var opts []game.Option
	opts = append(opts, game.WithLogger(logger))
	if cmd.Flags().Changed("lat") {
		opts = append(opts, game.WithStart(grid.LatLng{Lat: flagLat, Lng: flagLng}))
	}
	session := game.New(cfg, opts...)

	rc := core.DefaultConfig()
	rc.Player = flagName
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open runs database, the run will not be recorded", "error", err)
		store = nil
	}

	runID, runErr := tui.Run(session, store, rc, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}

	fmt.Printf("%s finished with %d coins worth %d points.\n", flagName, len(session.Inventory()), session.Score())
	if runID != "" {
		fmt.Printf("Run recorded as %s (geocoin scores --run %s)\n", runID, runID)
	}
	return nil
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultConfig().Player
}
