package maze

import (
	"fmt"
)

// A position on the interleaved grid. X is the column and Y is the row.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Differentiates between the three kinds of entity that make up a grid. The
// kind of an entity is fully determined by the parity of its coordinate.
type EntityKind uint8

const (
	// A traversable room, at (even, even) coordinates.
	CellKind EntityKind = iota
	// A boundary between two cells, at coordinates with exactly one odd
	// component.
	WallKind
	// Inert filler at (odd, odd) coordinates.
	PointKind
)

func (k EntityKind) String() string {
	switch k {
	case CellKind:
		return "Cell"
	case WallKind:
		return "Wall"
	case PointKind:
		return "Point"
	}
	return fmt.Sprintf("Unknown EntityKind: %d", uint8(k))
}

// Returns the kind of entity that lives at the given coordinate. Only the
// parity matters, so this is valid for any non-negative x and y.
func Classify(x, y int) EntityKind {
	xOdd := (x % 2) != 0
	yOdd := (y % 2) != 0
	if xOdd && yOdd {
		return PointKind
	}
	if xOdd || yOdd {
		return WallKind
	}
	return CellKind
}

// Returns the four potential neighboring cell coordinates, two steps away
// along each axis. The order is always left, right, up, down. Some of the
// returned coordinates may be outside of the grid.
func (c Coordinate) neighborCoordinates() [4]Coordinate {
	return [4]Coordinate{
		{c.X - 2, c.Y},
		{c.X + 2, c.Y},
		{c.X, c.Y - 2},
		{c.X, c.Y + 2},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Returns the coordinate of the wall lying between the two given cell
// coordinates. The cells must be aligned on exactly one axis and be exactly
// two apart; any other input returns ErrNotAdjacent.
func WallBetween(a, b Coordinate) (Coordinate, error) {
	if (Classify(a.X, a.Y) != CellKind) || (Classify(b.X, b.Y) != CellKind) {
		return Coordinate{}, fmt.Errorf("%w: %s and %s aren't both cells",
			ErrNotAdjacent, a, b)
	}
	if (a.X == b.X) && (absInt(a.Y-b.Y) == 2) {
		return Coordinate{a.X, min(a.Y, b.Y) + 1}, nil
	}
	if (a.Y == b.Y) && (absInt(a.X-b.X) == 2) {
		return Coordinate{min(a.X, b.X) + 1, a.Y}, nil
	}
	return Coordinate{}, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
}
