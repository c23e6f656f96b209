package coin

import (
	"fmt"

	"github.com/vovakirdan/geocoin/internal/grid"
)

type coinKey struct {
	cell   grid.Cell
	serial int
}

// Registry is the identity cache for coins. It never hands out two distinct
// *Coin values for the same (cell, serial).
//
// The registry only grows: entries live as long as the session that owns it.
// Memory is bounded by the cells a player has generated around, which stays
// small for per-connection sessions.
type Registry struct {
	kinds *KindTable
	coins map[coinKey]*Coin
}

// NewRegistry creates an empty registry whose coins draw kinds from kinds.
// A nil table uses DefaultKinds.
func NewRegistry(kinds *KindTable) *Registry {
	if kinds == nil {
		kinds = NewKindTable(nil)
	}
	return &Registry{
		kinds: kinds,
		coins: make(map[coinKey]*Coin),
	}
}

// GetOrCreate returns the canonical coin for (cell, serial), creating it on
// first request. Panics on a negative serial.
func (r *Registry) GetOrCreate(cell grid.Cell, serial int) *Coin {
	if serial < 0 {
		panic(fmt.Sprintf("coin: negative serial %d for cell %s", serial, cell))
	}
	k := coinKey{cell: cell, serial: serial}
	if c, ok := r.coins[k]; ok {
		return c
	}
	c := &Coin{
		cell:   cell,
		serial: serial,
		kind:   r.kinds.Pick(FormatID(cell, serial) + ":kind"),
	}
	r.coins[k] = c
	return c
}

// Lookup returns the coin for (cell, serial) only if it already exists.
func (r *Registry) Lookup(cell grid.Cell, serial int) (*Coin, bool) {
	c, ok := r.coins[coinKey{cell: cell, serial: serial}]
	return c, ok
}

// Resolve parses a coin identifier and returns its canonical coin.
func (r *Registry) Resolve(id string) (*Coin, error) {
	cell, serial, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.GetOrCreate(cell, serial), nil
}

// Len returns the number of canonical coins held.
func (r *Registry) Len() int {
	return len(r.coins)
}

// Kinds returns the kind flyweight table used by this registry.
func (r *Registry) Kinds() *KindTable {
	return r.kinds
}
