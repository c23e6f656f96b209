// Package world owns the cache sites of a game: which cells have spawned,
// which coins each site currently holds, and the moves of coins between
// sites and a player's inventory.
package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/geocoin/internal/coin"
	"github.com/vovakirdan/geocoin/internal/grid"
	"github.com/vovakirdan/geocoin/internal/luck"
)

// ErrNotFound is returned when a coin is not where a collect or deposit
// expected it. The world is left unchanged.
var ErrNotFound = errors.New("world: coin not found")

// Site is a cell together with the coins currently present there.
type Site struct {
	Cell  grid.Cell
	Coins []*coin.Coin
}

// Value returns the combined point value of the site's coins.
func (s Site) Value() int {
	total := 0
	for _, c := range s.Coins {
		total += c.Value()
	}
	return total
}

// Best returns the most valuable coin at the site, or nil if it is empty.
func (s Site) Best() *coin.Coin {
	var best *coin.Coin
	for _, c := range s.Coins {
		if best == nil || c.Value() > best.Value() {
			best = c
		}
	}
	return best
}

// Spawn describes the outcome of rolling a cell.
type Spawn struct {
	Cell  grid.Cell
	Coins int // 0 when the cell does not spawn
}

// Roll decides whether cell spawns a cache and how many coins it holds.
// It is a pure function of its arguments.
func Roll(cell grid.Cell, probability float64, minCoins, maxCoins int) Spawn {
	key := cell.Key()
	if luck.Luck(key) >= probability {
		return Spawn{Cell: cell}
	}
	if maxCoins < minCoins {
		maxCoins = minCoins
	}
	n := minCoins + luck.Intn(key+":count", maxCoins-minCoins+1)
	return Spawn{Cell: cell, Coins: n}
}

// World is the persistent logical map of cache sites for one session.
type World struct {
	registry *coin.Registry
	minCoins int
	maxCoins int

	sites   map[grid.Cell]*Site
	decided map[grid.Cell]bool // Cell -> spawned; presence means the roll is final
}

// New creates an empty world. Spawning cells receive between minCoins and
// maxCoins coins inclusive, materialised through registry.
func New(registry *coin.Registry, minCoins, maxCoins int) *World {
	if minCoins < 1 {
		minCoins = 1
	}
	if maxCoins < minCoins {
		maxCoins = minCoins
	}
	return &World{
		registry: registry,
		minCoins: minCoins,
		maxCoins: maxCoins,
		sites:    make(map[grid.Cell]*Site),
		decided:  make(map[grid.Cell]bool),
	}
}

// GenerateNeighborhood rolls every undecided cell within radius of center.
// Cells that were already decided keep their earlier outcome and contents.
// Returns the cells that spawned during this call.
func (w *World) GenerateNeighborhood(center grid.Cell, radius int, probability float64) []grid.Cell {
	var spawned []grid.Cell
	for _, cell := range grid.Neighborhood(center, radius) {
		if _, done := w.decided[cell]; done {
			continue
		}
		roll := Roll(cell, probability, w.minCoins, w.maxCoins)
		w.decided[cell] = roll.Coins > 0
		if roll.Coins == 0 {
			continue
		}

		site := w.site(cell)
		for serial := 0; serial < roll.Coins; serial++ {
			site.Coins = append(site.Coins, w.registry.GetOrCreate(cell, serial))
		}
		spawned = append(spawned, cell)
	}
	return spawned
}

// Collect moves c from the site at cell to the end of the player's inventory.
func (w *World) Collect(p *Player, c *coin.Coin, cell grid.Cell) error {
	if c == nil {
		return fmt.Errorf("%w: nil coin at cache %s", ErrNotFound, cell)
	}
	site, ok := w.sites[cell]
	if !ok {
		return fmt.Errorf("%w: %s at cache %s", ErrNotFound, c.ID(), cell)
	}
	idx := slices.Index(site.Coins, c)
	if idx < 0 {
		return fmt.Errorf("%w: %s at cache %s", ErrNotFound, c.ID(), cell)
	}

	site.Coins = slices.Delete(site.Coins, idx, idx+1)
	p.Inventory = append(p.Inventory, c)
	return nil
}

// Deposit moves c from the player's inventory to the end of the site at cell,
// creating the site if the cell has none.
func (w *World) Deposit(p *Player, c *coin.Coin, cell grid.Cell) error {
	if c == nil {
		return fmt.Errorf("%w: nil coin in inventory", ErrNotFound)
	}
	idx := slices.Index(p.Inventory, c)
	if idx < 0 {
		return fmt.Errorf("%w: %s in inventory", ErrNotFound, c.ID())
	}

	p.Inventory = slices.Delete(p.Inventory, idx, idx+1)
	site := w.site(cell)
	site.Coins = append(site.Coins, c)
	return nil
}

// Site returns a copy of the site at cell.
func (w *World) Site(cell grid.Cell) (Site, bool) {
	s, ok := w.sites[cell]
	if !ok {
		return Site{}, false
	}
	return copySite(s), true
}

// Sites returns copies of every site, north to south then west to east.
func (w *World) Sites() []Site {
	return w.collect(func(grid.Cell) bool { return true })
}

// ActiveSites returns copies of the sites within radius of center. Sites
// outside the radius are only hidden; their contents stay in the world.
func (w *World) ActiveSites(center grid.Cell, radius int) []Site {
	return w.collect(func(c grid.Cell) bool { return c.Chebyshev(center) <= radius })
}

// Decided reports whether the cell has been rolled, and if so whether it spawned.
func (w *World) Decided(cell grid.Cell) (spawned, decided bool) {
	spawned, decided = w.decided[cell]
	return spawned, decided
}

// TotalCoins returns the number of coins across all sites.
func (w *World) TotalCoins() int {
	total := 0
	for _, s := range w.sites {
		total += len(s.Coins)
	}
	return total
}

// Contents returns a copy of every site's coin list keyed by cell.
func (w *World) Contents() map[grid.Cell][]*coin.Coin {
	out := make(map[grid.Cell][]*coin.Coin, len(w.sites))
	for cell, s := range w.sites {
		out[cell] = slices.Clone(s.Coins)
	}
	return out
}

// DecidedCells returns a copy of the spawn decisions made so far.
func (w *World) DecidedCells() map[grid.Cell]bool {
	out := make(map[grid.Cell]bool, len(w.decided))
	for cell, spawned := range w.decided {
		out[cell] = spawned
	}
	return out
}

// Restore replaces all sites and decisions. The inputs are copied.
func (w *World) Restore(contents map[grid.Cell][]*coin.Coin, decided map[grid.Cell]bool) {
	w.sites = make(map[grid.Cell]*Site, len(contents))
	for cell, coins := range contents {
		w.sites[cell] = &Site{Cell: cell, Coins: slices.Clone(coins)}
	}
	w.decided = make(map[grid.Cell]bool, len(decided))
	for cell, spawned := range decided {
		w.decided[cell] = spawned
	}
}

// Registry returns the identity cache coins are drawn from.
func (w *World) Registry() *coin.Registry {
	return w.registry
}

func (w *World) site(cell grid.Cell) *Site {
	s, ok := w.sites[cell]
	if !ok {
		s = &Site{Cell: cell}
		w.sites[cell] = s
	}
	return s
}

func (w *World) collect(keep func(grid.Cell) bool) []Site {
	out := make([]Site, 0, len(w.sites))
	for cell, s := range w.sites {
		if keep(cell) {
			out = append(out, copySite(s))
		}
	}
	slices.SortFunc(out, func(a, b Site) int {
		if a.Cell.I != b.Cell.I {
			return b.Cell.I - a.Cell.I
		}
		return a.Cell.J - b.Cell.J
	})
	return out
}

func copySite(s *Site) Site {
	return Site{Cell: s.Cell, Coins: slices.Clone(s.Coins)}
}
