package grid

// Direction is one of the four compass moves a player can make.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the cell offset for one step in this direction.
func (d Direction) Delta() Cell {
	switch d {
	case North:
		return Cell{I: 1}
	case South:
		return Cell{I: -1}
	case East:
		return Cell{J: 1}
	case West:
		return Cell{J: -1}
	default:
		return Cell{}
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
