package maze

import (
	"fmt"
)

// Satisfies the Maze interface. Basically a 2D array of entities, indexed
// [y][x]. Height and width are odd, so rows and columns both start and end
// with cells. Create using NewGrid.
type Grid struct {
	height   int
	width    int
	entities [][]Entity
	// The cell the last generation started from.
	start Coordinate
	// The seed used by the last generation, or 0 if the generator was given
	// an external RNG.
	randomSeed int64
	// The time required for the last generation, in seconds.
	generationTime float64
	// The number of walls opened by the last generation.
	carveCount int
	// Whether the last generation ran until the stack emptied.
	complete bool
}

// Allocates a grid of the given size and fills it with entities according to
// the parity of their coordinates. Height and width must be odd and positive.
// All cells start unvisited and all walls start closed.
func NewGrid(height, width int) (*Grid, error) {
	if (height < 1) || (width < 1) {
		return nil, fmt.Errorf("%w: height and width must be at least 1",
			ErrInvalidDimensions)
	}
	if ((height % 2) == 0) || ((width % 2) == 0) {
		return nil, fmt.Errorf("%w: height (%d) and width (%d) must be odd",
			ErrInvalidDimensions, height, width)
	}
	// Check for overflow.
	if (height * width) <= 0 {
		return nil, fmt.Errorf("%w: the maze's size was too big",
			ErrInvalidDimensions)
	}
	toReturn := &Grid{
		height:   height,
		width:    width,
		entities: make([][]Entity, height),
	}
	for y := 0; y < height; y++ {
		row := make([]Entity, width)
		for x := 0; x < width; x++ {
			row[x] = newEntity(x, y)
		}
		toReturn.entities[y] = row
	}
	return toReturn, nil
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Width() int {
	return g.width
}

// Returns the number of cells in the grid.
func (g *Grid) CellCount() int {
	return ((g.height + 1) / 2) * ((g.width + 1) / 2)
}

// Returns the number of walls that are currently open.
func (g *Grid) OpenWallCount() int {
	count := 0
	for y := range g.entities {
		for x := range g.entities[y] {
			if g.entities[y][x].IsOpen() {
				count++
			}
		}
	}
	return count
}

// Returns true if the last generation carved every cell. False for a grid
// that was never generated, or whose generation was cancelled.
func (g *Grid) Complete() bool {
	return g.complete
}

// Returns the cell the last generation started from.
func (g *Grid) Start() Coordinate {
	return g.start
}

func (g *Grid) inBounds(c Coordinate) bool {
	return (c.X >= 0) && (c.Y >= 0) && (c.X < g.width) && (c.Y < g.height)
}

// Returns a pointer to the entity at c. The coordinate must be in bounds.
func (g *Grid) entityAt(c Coordinate) *Entity {
	return &(g.entities[c.Y][c.X])
}

// Returns a copy of the entity at the given coordinate.
func (g *Grid) Entity(c Coordinate) (Entity, error) {
	if !g.inBounds(c) {
		return Entity{}, fmt.Errorf("coordinate %s is outside the %dx%d grid",
			c, g.height, g.width)
	}
	return *g.entityAt(c), nil
}

// Returns a copy of the full entity array, indexed [y][x]. Changes to the
// returned slices don't affect the grid.
func (g *Grid) Entities() [][]Entity {
	toReturn := make([][]Entity, g.height)
	for y := range g.entities {
		toReturn[y] = make([]Entity, g.width)
		copy(toReturn[y], g.entities[y])
	}
	return toReturn
}

// Returns the neighboring cells of the given cell that lie within the grid,
// always in left, right, up, down order.
func (g *Grid) neighbors(cell *Entity) []*Entity {
	toReturn := make([]*Entity, 0, 4)
	for _, c := range cell.coord.neighborCoordinates() {
		if !g.inBounds(c) {
			continue
		}
		toReturn = append(toReturn, g.entityAt(c))
	}
	return toReturn
}

// Like neighbors, but skips any cell that was already visited.
func (g *Grid) unvisitedNeighbors(cell *Entity) []*Entity {
	toReturn := make([]*Entity, 0, 4)
	for _, n := range g.neighbors(cell) {
		if n.visited {
			continue
		}
		toReturn = append(toReturn, n)
	}
	return toReturn
}

// Returns a pointer to the cell at c, or an error if c isn't a cell in the
// grid.
func (g *Grid) cellAt(c Coordinate) (*Entity, error) {
	if !g.inBounds(c) {
		return nil, fmt.Errorf("%s is outside the %dx%d grid", c, g.height,
			g.width)
	}
	toReturn := g.entityAt(c)
	if toReturn.kind != CellKind {
		return nil, fmt.Errorf("%s is a %s, not a Cell", c, toReturn.Name())
	}
	return toReturn, nil
}

func copyEntities(src []*Entity) []Entity {
	toReturn := make([]Entity, len(src))
	for i, e := range src {
		toReturn[i] = *e
	}
	return toReturn
}

// Returns copies of the in-bounds cells two steps away from the given cell,
// in left, right, up, down order.
func (g *Grid) NeighborsOf(c Coordinate) ([]Entity, error) {
	cell, e := g.cellAt(c)
	if e != nil {
		return nil, e
	}
	return copyEntities(g.neighbors(cell)), nil
}

// Like NeighborsOf, but only returns cells that haven't been visited yet.
func (g *Grid) UnvisitedNeighborsOf(c Coordinate) ([]Entity, error) {
	cell, e := g.cellAt(c)
	if e != nil {
		return nil, e
	}
	return copyEntities(g.unvisitedNeighbors(cell)), nil
}

func (g *Grid) wallBetween(a, b Coordinate) (*Entity, error) {
	c, e := WallBetween(a, b)
	if e != nil {
		return nil, e
	}
	if !g.inBounds(a) || !g.inBounds(b) {
		return nil, fmt.Errorf("%w: %s or %s is outside the grid",
			ErrNotAdjacent, a, b)
	}
	return g.entityAt(c), nil
}

// Returns a copy of the wall lying between the two given cells.
func (g *Grid) WallBetween(a, b Coordinate) (Entity, error) {
	w, e := g.wallBetween(a, b)
	if e != nil {
		return Entity{}, e
	}
	return *w, nil
}

// Opens the wall at the given coordinate. Opening a wall twice is fine.
func (g *Grid) OpenWall(c Coordinate) error {
	if !g.inBounds(c) {
		return fmt.Errorf("%w: %s is outside the grid", ErrNotWall, c)
	}
	w := g.entityAt(c)
	if w.kind != WallKind {
		return fmt.Errorf("%w: %s is a %s", ErrNotWall, c, w.Name())
	}
	w.open = true
	return nil
}

// Returns every cell to unvisited and closes every wall.
func (g *Grid) reset() {
	for y := range g.entities {
		for x := range g.entities[y] {
			g.entities[y][x].visited = false
			g.entities[y][x].open = false
		}
	}
	g.complete = false
	g.carveCount = 0
	g.generationTime = 0
	g.randomSeed = 0
}

func (g *Grid) GetInfo() string {
	status := "complete"
	if !g.complete {
		status = "incomplete"
	}
	return fmt.Sprintf("%dx%d grid maze (%s) from %s with random seed %d, "+
		"%d walls opened in %.03f seconds", g.height, g.width, status,
		g.start, g.randomSeed, g.carveCount, g.generationTime)
}
