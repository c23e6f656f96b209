// Package core provides the terminal-independent building blocks of the host
// shell: a colored character buffer, map geometry and semantic actions.
// It contains no Bubble Tea code to keep drawing testable.
package core

import "github.com/vovakirdan/geocoin/internal/grid"

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the rectangle shrunk by one character on every side.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Viewport projects grid cells onto a screen area centred on one cell.
// North is up and east is right. Each cell is CellW characters wide.
type Viewport struct {
	Area   Rect
	Center grid.Cell
	CellW  int
}

// NewViewport creates a viewport over area centred on center.
func NewViewport(area Rect, center grid.Cell, cellW int) Viewport {
	if cellW < 1 {
		cellW = 1
	}
	return Viewport{Area: area, Center: center, CellW: cellW}
}

// RadiusI returns how many rows fit above and below the centre.
func (v Viewport) RadiusI() int {
	return max((v.Area.H-1)/2, 0)
}

// RadiusJ returns how many columns fit left and right of the centre.
func (v Viewport) RadiusJ() int {
	return max((v.Area.W/v.CellW-1)/2, 0)
}

// ToScreen returns the screen position of cell and whether it is visible.
func (v Viewport) ToScreen(c grid.Cell) (x, y int, ok bool) {
	di := v.Center.I - c.I
	dj := c.J - v.Center.J
	if di < -v.RadiusI() || di > v.RadiusI() || dj < -v.RadiusJ() || dj > v.RadiusJ() {
		return 0, 0, false
	}
	x = v.Area.X + (dj+v.RadiusJ())*v.CellW
	y = v.Area.Y + di + v.RadiusI()
	return x, y, true
}

// Cells returns every visible cell, north row first.
func (v Viewport) Cells() []grid.Cell {
	ri, rj := v.RadiusI(), v.RadiusJ()
	cells := make([]grid.Cell, 0, (2*ri+1)*(2*rj+1))
	for di := ri; di >= -ri; di-- {
		for dj := -rj; dj <= rj; dj++ {
			cells = append(cells, v.Center.Add(grid.C(di, dj)))
		}
	}
	return cells
}
