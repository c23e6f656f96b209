// Package coin holds the collectible coin type and the registries that keep
// coin identity canonical: one *Coin per (cell, serial) and one *Kind per tier.
package coin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/geocoin/internal/grid"
)

// Coin is a collectible identified by the cell it spawned in and a serial
// number unique within that cell. Coins are created only by a Registry, so
// pointer equality is identity equality.
type Coin struct {
	cell   grid.Cell
	serial int
	kind   *Kind
}

// Cell returns the cell the coin originally spawned in.
func (c *Coin) Cell() grid.Cell {
	return c.cell
}

// Serial returns the coin's serial within its cell.
func (c *Coin) Serial() int {
	return c.serial
}

// Kind returns the shared intrinsic data for this coin.
func (c *Coin) Kind() *Kind {
	return c.kind
}

// Value returns the point value of the coin.
func (c *Coin) Value() int {
	if c.kind == nil {
		return 0
	}
	return c.kind.Value
}

// ID returns the "{i}:{j}#{serial}" identifier.
func (c *Coin) ID() string {
	return FormatID(c.cell, c.serial)
}

// String implements fmt.Stringer.
func (c *Coin) String() string {
	if c.kind == nil {
		return c.ID()
	}
	return c.ID() + " (" + c.kind.Name + ")"
}

// FormatID builds the identifier for a (cell, serial) pair.
func FormatID(cell grid.Cell, serial int) string {
	return cell.Key() + "#" + strconv.Itoa(serial)
}

// ParseID splits an identifier produced by FormatID.
func ParseID(id string) (grid.Cell, int, error) {
	key, serialStr, ok := strings.Cut(id, "#")
	if !ok {
		return grid.Cell{}, 0, fmt.Errorf("%w: coin id %q", grid.ErrMalformedKey, id)
	}
	cell, err := grid.ParseKey(key)
	if err != nil {
		return grid.Cell{}, 0, fmt.Errorf("%w: coin id %q", grid.ErrMalformedKey, id)
	}
	serial, err := strconv.Atoi(serialStr)
	if err != nil || serial < 0 || strconv.Itoa(serial) != serialStr {
		return grid.Cell{}, 0, fmt.Errorf("%w: coin id %q", grid.ErrMalformedKey, id)
	}
	return cell, serial, nil
}
