// Package config provides YAML-based game configuration loading and
// density presets for geocoin.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/geocoin/internal/coin"
	"github.com/vovakirdan/geocoin/internal/grid"
)

// Config contains all tunables of a game session.
type Config struct {
	World   WorldConfig     `yaml:"world"`
	Spawn   SpawnConfig     `yaml:"spawn"`
	Kinds   []coin.KindSpec `yaml:"kinds"`
	History HistoryConfig   `yaml:"history"`
}

// WorldConfig defines the grid and how far the player sees.
type WorldConfig struct {
	Origin             grid.LatLng `yaml:"origin"`
	CellSize           float64     `yaml:"cell_size"`           // Degrees per cell
	NeighborhoodRadius int         `yaml:"neighborhood_radius"` // Cells generated around the player
	VisibilityRadius   int         `yaml:"visibility_radius"`   // Cells rendered around the player
}

// SpawnConfig defines cache spawning.
type SpawnConfig struct {
	Probability float64 `yaml:"probability"` // Chance that a cell holds a cache, 0-1
	MinCoins    int     `yaml:"min_coins"`
	MaxCoins    int     `yaml:"max_coins"`
}

// HistoryConfig defines undo behaviour.
type HistoryConfig struct {
	Limit          int  `yaml:"limit"`            // Max saved snapshots, 0 = unbounded
	CheckpointMove bool `yaml:"checkpoint_move"`  // Save before every move
	CheckpointCoin bool `yaml:"checkpoint_coins"` // Save before every collect/deposit
}

// Grid returns the grid described by the world config.
func (c Config) Grid() grid.Grid {
	return grid.New(c.World.Origin, c.World.CellSize)
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	var errs []error
	if !finite(c.World.Origin.Lat) || !finite(c.World.Origin.Lng) {
		errs = append(errs, fmt.Errorf("world.origin must be finite, got %v", c.World.Origin))
	}
	if !finite(c.World.CellSize) || c.World.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("world.cell_size must be positive, got %v", c.World.CellSize))
	}
	if c.World.NeighborhoodRadius < 0 {
		errs = append(errs, fmt.Errorf("world.neighborhood_radius must not be negative, got %d", c.World.NeighborhoodRadius))
	}
	if c.World.VisibilityRadius < 0 {
		errs = append(errs, fmt.Errorf("world.visibility_radius must not be negative, got %d", c.World.VisibilityRadius))
	}
	if !finite(c.Spawn.Probability) || c.Spawn.Probability < 0 || c.Spawn.Probability > 1 {
		errs = append(errs, fmt.Errorf("spawn.probability must be within [0,1], got %v", c.Spawn.Probability))
	}
	if c.Spawn.MinCoins < 1 {
		errs = append(errs, fmt.Errorf("spawn.min_coins must be at least 1, got %d", c.Spawn.MinCoins))
	}
	if c.Spawn.MaxCoins < c.Spawn.MinCoins {
		errs = append(errs, fmt.Errorf("spawn.max_coins (%d) must not be below min_coins (%d)", c.Spawn.MaxCoins, c.Spawn.MinCoins))
	}
	for _, k := range c.Kinds {
		if k.Name == "" {
			errs = append(errs, errors.New("kinds: every kind needs a name"))
		}
		if !finite(k.Weight) || k.Weight < 0 {
			errs = append(errs, fmt.Errorf("kinds: %s has invalid weight %v", k.Name, k.Weight))
		}
	}
	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DensityPreset is a named spawn density.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// ProbabilityForPreset returns the spawn probability for a preset.
// Unknown presets return ok=false.
func ProbabilityForPreset(preset DensityPreset) (p float64, ok bool) {
	switch preset {
	case DensitySparse:
		return 0.05, true
	case DensityNormal:
		return 0.1, true
	case DensityDense:
		return 0.25, true
	default:
		return 0, false
	}
}

// ApplyPreset modifies the config based on a density preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DensityPreset) error {
	if preset == "" {
		return nil
	}
	p, ok := ProbabilityForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown density %q (want sparse, normal or dense)", preset)
	}
	cfg.Spawn.Probability = p
	return nil
}
