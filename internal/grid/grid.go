// Package grid converts between geographic coordinates and integer cells.
// A Grid is anchored at a fixed origin and divides space into square cells of a
// fixed size; cell (0, 0) starts at the origin.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedKey is returned when a cell or coin key cannot be parsed.
// It signals a contract violation by the caller building the key.
var ErrMalformedKey = errors.New("grid: malformed key")

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// String formats the coordinate with enough precision to tell cells apart.
func (p LatLng) String() string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

// Cell addresses one square of the grid. I runs along latitude, J along longitude.
type Cell struct {
	I, J int
}

// C is shorthand for Cell{I: i, J: j}.
func C(i, j int) Cell {
	return Cell{I: i, J: j}
}

// Key returns the canonical "{i}:{j}" string for the cell.
func (c Cell) Key() string {
	return strconv.Itoa(c.I) + ":" + strconv.Itoa(c.J)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return c.Key()
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(o Cell) Cell {
	return Cell{I: c.I + o.I, J: c.J + o.J}
}

// Chebyshev returns the king-move distance between two cells.
func (c Cell) Chebyshev(o Cell) int {
	return max(abs(c.I-o.I), abs(c.J-o.J))
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	return c.Add(d.Delta())
}

// ParseKey parses a canonical "{i}:{j}" cell key. Signs, leading zeros and
// spaces that Key would not produce are rejected.
func ParseKey(key string) (Cell, error) {
	is, js, ok := strings.Cut(key, ":")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	i, err := strconv.Atoi(is)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	j, err := strconv.Atoi(js)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	c := Cell{I: i, J: j}
	if c.Key() != key {
		return Cell{}, fmt.Errorf("%w: %q is not canonical", ErrMalformedKey, key)
	}
	return c, nil
}

// MustParseKey is like ParseKey but panics on malformed input.
func MustParseKey(key string) Cell {
	c, err := ParseKey(key)
	if err != nil {
		panic(err)
	}
	return c
}

// Grid maps geographic coordinates onto cells.
type Grid struct {
	Origin   LatLng
	CellSize float64 // Degrees per cell on both axes
}

// New creates a grid anchored at origin with the given cell size.
func New(origin LatLng, cellSize float64) Grid {
	return Grid{Origin: origin, CellSize: cellSize}
}

// CellToLatLng returns the south-west corner of the cell.
func (g Grid) CellToLatLng(c Cell) LatLng {
	return LatLng{
		Lat: g.Origin.Lat + float64(c.I)*g.CellSize,
		Lng: g.Origin.Lng + float64(c.J)*g.CellSize,
	}
}

// LatLngToCell returns the cell containing the point: the largest cell whose
// south-west corner, as computed by CellToLatLng, is at or below p.
func (g Grid) LatLngToCell(p LatLng) Cell {
	return Cell{
		I: floorAxis(p.Lat, g.Origin.Lat, g.CellSize),
		J: floorAxis(p.Lng, g.Origin.Lng, g.CellSize),
	}
}

// Shift moves p by d cells and keeps its offset inside the cell. The result
// is computed from the target corner, so repeated shifts do not drift.
func (g Grid) Shift(p LatLng, d Cell) LatLng {
	cur := g.LatLngToCell(p)
	target := cur.Add(d)
	sw, tsw := g.CellToLatLng(cur), g.CellToLatLng(target)

	out := LatLng{
		Lat: tsw.Lat + (p.Lat - sw.Lat),
		Lng: tsw.Lng + (p.Lng - sw.Lng),
	}
	got := g.LatLngToCell(out)
	if got.I != target.I {
		out.Lat = tsw.Lat
	}
	if got.J != target.J {
		out.Lng = tsw.Lng
	}
	return out
}

// Bounds returns the south-west and north-east corners of the cell.
func (g Grid) Bounds(c Cell) (sw, ne LatLng) {
	return g.CellToLatLng(c), g.CellToLatLng(c.Add(Cell{I: 1, J: 1}))
}

// Neighborhood returns every cell within Chebyshev distance radius of center,
// in row-major order (north row first, west to east).
func Neighborhood(center Cell, radius int) []Cell {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	cells := make([]Cell, 0, side*side)
	for di := radius; di >= -radius; di-- {
		for dj := -radius; dj <= radius; dj++ {
			cells = append(cells, Cell{I: center.I + di, J: center.J + dj})
		}
	}
	return cells
}

// floorAxis floors (v-origin)/size and then corrects the result against the
// forward mapping origin+c*size, so corners map back to their own cell.
func floorAxis(v, origin, size float64) int {
	c := int(math.Floor((v - origin) / size))
	if origin+float64(c+1)*size <= v {
		return c + 1
	}
	if origin+float64(c)*size > v {
		return c - 1
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
