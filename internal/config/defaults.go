package config

import (
	_ "embed"

	"github.com/vovakirdan/geocoin/internal/coin"
	"github.com/vovakirdan/geocoin/internal/grid"
)

//go:embed defaults/geocoin.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// The origin is the Oakes College classroom the game was first played around.
func Default() Config {
	return Config{
		World: WorldConfig{
			Origin:             grid.LatLng{Lat: 36.98949379578401, Lng: -122.06277128548504},
			CellSize:           0.0001,
			NeighborhoodRadius: 8,
			VisibilityRadius:   8,
		},
		Spawn: SpawnConfig{
			Probability: 0.1,
			MinCoins:    1,
			MaxCoins:    3,
		},
		Kinds: coin.DefaultKinds(),
		History: HistoryConfig{
			Limit:          256,
			CheckpointMove: true,
			CheckpointCoin: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
