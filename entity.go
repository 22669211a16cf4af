package maze

// A single entity of the interleaved grid. Exactly one of the three kinds;
// visited only has meaning for cells and open only has meaning for walls.
type Entity struct {
	kind    EntityKind
	coord   Coordinate
	visited bool
	open    bool
}

func newEntity(x, y int) Entity {
	return Entity{
		kind:  Classify(x, y),
		coord: Coordinate{x, y},
	}
}

func (e Entity) Kind() EntityKind {
	return e.kind
}

func (e Entity) Coordinate() Coordinate {
	return e.coord
}

// Returns the human-readable kind name, e.g. "Wall".
func (e Entity) Name() string {
	return e.kind.String()
}

// Returns true if this is a cell that the generator has reached. Always false
// for walls and points.
func (e Entity) Visited() bool {
	return (e.kind == CellKind) && e.visited
}

// Returns true if this is a wall that has been carved away. Always false for
// cells and points.
func (e Entity) IsOpen() bool {
	return (e.kind == WallKind) && e.open
}

// Returns true if the entity is open space: any cell, or an opened wall.
func (e Entity) IsTraversable() bool {
	switch e.kind {
	case CellKind:
		return true
	case WallKind:
		return e.open
	}
	return false
}

func (e Entity) String() string {
	return "I'm a " + e.Name() + " at " + e.coord.String()
}
