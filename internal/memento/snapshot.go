package memento

import (
	"maps"
	"slices"

	"github.com/vovakirdan/geocoin/internal/grid"
)

// CoinRef names a coin by its origin cell key and serial.
type CoinRef struct {
	Cell   string `yaml:"cell" json:"cell"`
	Serial int    `yaml:"serial" json:"serial"`
}

// PlayerData is the captured state of a player.
type PlayerData struct {
	Position  grid.LatLng `yaml:"position" json:"position"`
	Inventory []CoinRef   `yaml:"inventory" json:"inventory"`
}

// WorldData maps a cell key to the coins present at that site.
type WorldData map[string][]CoinRef

// Snapshot is a self-contained copy of player and world at one instant.
// It holds only values, so nothing in live state can reach into it.
type Snapshot struct {
	Player PlayerData `yaml:"player" json:"player"`
	World  WorldData  `yaml:"world" json:"world"`

	// Decided records every rolled cell and whether it spawned, so a restored
	// world neither re-rolls nor forgets cells decided after the snapshot.
	Decided map[string]bool `yaml:"decided,omitempty" json:"decided,omitempty"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Player:  s.Player.Clone(),
		World:   s.World.Clone(),
		Decided: maps.Clone(s.Decided),
	}
}

// Clone returns a deep copy of the player data.
func (p PlayerData) Clone() PlayerData {
	return PlayerData{
		Position:  p.Position,
		Inventory: slices.Clone(p.Inventory),
	}
}

// Clone returns a deep copy of the world data.
func (w WorldData) Clone() WorldData {
	if w == nil {
		return nil
	}
	out := make(WorldData, len(w))
	for k, coins := range w {
		out[k] = slices.Clone(coins)
	}
	return out
}

// CoinCount returns the number of coins across all sites.
func (w WorldData) CoinCount() int {
	n := 0
	for _, coins := range w {
		n += len(coins)
	}
	return n
}
