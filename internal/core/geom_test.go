package core

import (
	"testing"

	"github.com/vovakirdan/geocoin/internal/grid"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},  // Top-left corner
		{29, 29, true},  // Just inside bottom-right
		{30, 30, false}, // Bottom-right (exclusive)
		{5, 15, false},
		{15, 35, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectInner(t *testing.T) {
	if got := NewRect(0, 0, 10, 6).Inner(); got != NewRect(1, 1, 8, 4) {
		t.Errorf("Inner() = %+v", got)
	}
	if got := NewRect(0, 0, 1, 1).Inner(); got.W != 0 || got.H != 0 {
		t.Errorf("Inner() of a tiny rect = %+v, expected zero size", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestViewportRadius(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 34, 9), grid.C(0, 0), 2)
	if v.RadiusI() != 4 {
		t.Errorf("RadiusI() = %d, expected 4", v.RadiusI())
	}
	if v.RadiusJ() != 8 {
		t.Errorf("RadiusJ() = %d, expected 8", v.RadiusJ())
	}
	if got := len(v.Cells()); got != 9*17 {
		t.Errorf("len(Cells()) = %d, expected %d", got, 9*17)
	}
}

func TestViewportToScreen(t *testing.T) {
	v := NewViewport(NewRect(1, 1, 10, 5), grid.C(5, 5), 2)

	tests := []struct {
		name string
		cell grid.Cell
		x, y int
		ok   bool
	}{
		{"centre", grid.C(5, 5), 5, 3, true},
		{"north is up", grid.C(6, 5), 5, 2, true},
		{"east is right", grid.C(5, 6), 7, 3, true},
		{"north-west corner", grid.C(7, 3), 1, 1, true},
		{"too far north", grid.C(8, 5), 0, 0, false},
		{"too far east", grid.C(5, 8), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := v.ToScreen(tc.cell)
			if ok != tc.ok || x != tc.x || y != tc.y {
				t.Errorf("ToScreen(%v) = (%d, %d, %v), expected (%d, %d, %v)", tc.cell, x, y, ok, tc.x, tc.y, tc.ok)
			}
		})
	}
}

func TestViewportCellsAreVisible(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 20, 7), grid.C(-3, 2), 2)
	for _, c := range v.Cells() {
		if _, _, ok := v.ToScreen(c); !ok {
			t.Errorf("cell %v listed but not visible", c)
		}
	}
	if first := v.Cells()[0]; first != grid.C(0, -2) {
		t.Errorf("first cell = %v, expected the north-west corner 0:-2", first)
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    grid.Direction
		ok     bool
	}{
		{ActionMoveNorth, grid.North, true},
		{ActionMoveSouth, grid.South, true},
		{ActionMoveEast, grid.East, true},
		{ActionMoveWest, grid.West, true},
		{ActionCollect, 0, false},
	}

	for _, tc := range tests {
		dir, ok := tc.action.Direction()
		if ok != tc.ok || (ok && dir != tc.dir) {
			t.Errorf("%v.Direction() = %v, %v", tc.action, dir, ok)
		}
	}
	if ActionHelp.Mutates() || !ActionUndo.Mutates() {
		t.Error("Mutates() misclassifies actions")
	}
}
