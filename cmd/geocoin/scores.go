package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geocoin/internal/platform/tui"
	"github.com/vovakirdan/geocoin/internal/storage"
)

var (
	flagLimit       int
	flagPlayer      string
	flagInteractive bool
	flagClear       bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best recorded runs and overall statistics.

Examples:
  geocoin scores
  geocoin scores --limit 20
  geocoin scores --player ana
  geocoin scores --run 6f1c2a9e-...
  geocoin scores --interactive
  geocoin scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player, newest first")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "clear", "run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagRunID != "" {
		run, err := store.RunByID(flagRunID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("no run with ID %q", flagRunID)
		}
		fmt.Println(runsTable([]storage.Run{*run}))
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'geocoin play' and quit with q to record the first run!")
		return nil
	}

	fmt.Println(runsTable(runs))

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Coins kept: %d\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.TotalCoins)
	return nil
}

// runsTable formats runs as a bordered table.
func runsTable(runs []storage.Run) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Player", "Score", "Coins", "Cells", "Date")

	for i, r := range runs {
		t.Row(
			fmt.Sprintf("#%d", i+1),
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Coins),
			strconv.Itoa(r.CellsVisited),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t
}
