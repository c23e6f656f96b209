package world

import (
	"slices"

	"github.com/vovakirdan/geocoin/internal/coin"
	"github.com/vovakirdan/geocoin/internal/grid"
)

// Player is the position and held coins of the person playing.
type Player struct {
	Position  grid.LatLng
	Inventory []*coin.Coin // In order of collection
}

// NewPlayer creates a player standing at pos with nothing held.
func NewPlayer(pos grid.LatLng) *Player {
	return &Player{Position: pos}
}

// Cell returns the cell the player stands in.
func (p *Player) Cell(g grid.Grid) grid.Cell {
	return g.LatLngToCell(p.Position)
}

// Holds reports whether c is in the inventory.
func (p *Player) Holds(c *coin.Coin) bool {
	return slices.Contains(p.Inventory, c)
}

// Value returns the total point value of held coins.
func (p *Player) Value() int {
	total := 0
	for _, c := range p.Inventory {
		total += c.Value()
	}
	return total
}

// Last returns the most recently collected coin, or nil.
func (p *Player) Last() *coin.Coin {
	if len(p.Inventory) == 0 {
		return nil
	}
	return p.Inventory[len(p.Inventory)-1]
}
