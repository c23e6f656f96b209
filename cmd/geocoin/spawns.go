package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/geocoin/internal/coin"
	"github.com/vovakirdan/geocoin/internal/config"
	"github.com/vovakirdan/geocoin/internal/grid"
	"github.com/vovakirdan/geocoin/internal/world"
)

var (
	flagCell     string
	flagSpawnLat float64
	flagSpawnLng float64
	flagRadius   int
	flagFormat   string
)

var spawnsCmd = &cobra.Command{
	Use:   "spawns",
	Short: "Show the caches that spawn around a cell",
	Long: `List the caches a fresh world generates around a cell, with their coins.
Spawns depend only on the cell and the configuration, so the output is the
same on every machine.

Examples:
  geocoin spawns
  geocoin spawns --cell 3:-2 --radius 2
  geocoin spawns --lat 36.9895 --lng -122.0628
  geocoin spawns --format yaml`,
	Args: cobra.NoArgs,
	RunE: runSpawns,
}

func init() {
	spawnsCmd.Flags().StringVar(&flagCell, "cell", "0:0", "Centre cell as i:j")
	spawnsCmd.Flags().Float64Var(&flagSpawnLat, "lat", 0, "Centre latitude, overrides --cell")
	spawnsCmd.Flags().Float64Var(&flagSpawnLng, "lng", 0, "Centre longitude, overrides --cell")
	spawnsCmd.Flags().IntVar(&flagRadius, "radius", -1, "Radius in cells (default: config neighborhood radius)")
	spawnsCmd.Flags().StringVar(&flagFormat, "format", "table", "Output format: table, yaml")
	spawnsCmd.MarkFlagsRequiredTogether("lat", "lng")
	spawnsCmd.MarkFlagsMutuallyExclusive("cell", "lat")
}

// spawnReport is one cache in the yaml output.
type spawnReport struct {
	Cell  string       `yaml:"cell"`
	Coins []coinReport `yaml:"coins"`
	Value int          `yaml:"value"`
}

type coinReport struct {
	ID    string `yaml:"id"`
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}

func runSpawns(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	center, err := grid.ParseKey(flagCell)
	if err != nil {
		return fmt.Errorf("invalid --cell: %w", err)
	}
	if cmd.Flags().Changed("lat") {
		center = cfg.Grid().LatLngToCell(grid.LatLng{Lat: flagSpawnLat, Lng: flagSpawnLng})
	}
	radius := flagRadius
	if radius < 0 {
		radius = cfg.World.NeighborhoodRadius
	}

	sites := generate(cfg, center, radius)

	switch strings.ToLower(flagFormat) {
	case "table":
		printSpawnTable(cfg, center, radius, sites)
		return nil
	case "yaml":
		return printSpawnYAML(sites)
	default:
		return fmt.Errorf("unknown format %q (expected table or yaml)", flagFormat)
	}
}

// generate builds a fresh world around center and returns its caches.
func generate(cfg config.Config, center grid.Cell, radius int) []world.Site {
	registry := coin.NewRegistry(coin.NewKindTable(cfg.Kinds))
	w := world.New(registry, cfg.Spawn.MinCoins, cfg.Spawn.MaxCoins)
	w.GenerateNeighborhood(center, radius, cfg.Spawn.Probability)
	return w.Sites()
}

func printSpawnTable(cfg config.Config, center grid.Cell, radius int, sites []world.Site) {
	sw, _ := cfg.Grid().Bounds(center)
	fmt.Printf("Caches within %d cells of %s (%s), probability %.2f\n\n",
		radius, center, sw, cfg.Spawn.Probability)

	if len(sites) == 0 {
		fmt.Println("No caches.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Cell", "Coins", "Value", "Kinds")

	total := 0
	perKind := make(map[string]int)
	for _, s := range sites {
		kinds := make([]string, len(s.Coins))
		for i, c := range s.Coins {
			kinds[i] = c.Kind().Name
			perKind[c.Kind().Name]++
		}
		t.Row(s.Cell.Key(), strconv.Itoa(len(s.Coins)), strconv.Itoa(s.Value()), strings.Join(kinds, ", "))
		total += len(s.Coins)
	}
	fmt.Println(t)
	fmt.Printf("\n%d caches, %d coins (%s)\n", len(sites), total, kindTally(cfg, perKind))
}

// kindTally formats per-kind counts in the configured kind order.
func kindTally(cfg config.Config, counts map[string]int) string {
	names := coin.NewKindTable(cfg.Kinds).Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %d", name, counts[name])
	}
	return strings.Join(parts, ", ")
}

func printSpawnYAML(sites []world.Site) error {
	reports := make([]spawnReport, len(sites))
	for i, s := range sites {
		r := spawnReport{Cell: s.Cell.Key(), Value: s.Value()}
		for _, c := range s.Coins {
			r.Coins = append(r.Coins, coinReport{ID: c.ID(), Kind: c.Kind().Name, Value: c.Value()})
		}
		reports[i] = r
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
