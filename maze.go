// This defines a library for generating 2D "perfect" mazes using an iterative
// randomized depth-first search. The maze lives on an interleaved grid, where
// cells sit at (even, even) coordinates, walls sit between them, and inert
// points fill the (odd, odd) corners. Generated grids satisfy the Maze
// interface, which includes go's image.Image interface.
package maze

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

var (
	// Returned when a grid's height or width is even, or not positive.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	// Returned when a generation start coordinate doesn't address a Cell.
	ErrInvalidStart = errors.New("invalid start coordinate")
	// Returned when two coordinates aren't axis-aligned cells exactly two
	// apart, so there is no wall between them.
	ErrNotAdjacent = errors.New("coordinates are not adjacent cells")
	// Returned when trying to open something that isn't a Wall.
	ErrNotWall = errors.New("entity is not a wall")
	// Returned by Verify when the carved passages don't form a spanning tree.
	ErrNotPerfect = errors.New("maze is not perfect")
)

// All grids returned by this library will support this interface. It provides
// the Image interface so the mazes can be saved to files, along with the
// derived bitmap and a textual dump.
type Maze interface {
	image.Image
	Bitmap() [][]uint8
	String() string
	// Returns a human-readable string about the maze, for providing debug
	// info such as the last random seed used.
	GetInfo() string
}

// Builds a grid and carves it starting from the top-left cell. If the given
// RNG seed is not positive, a new seed will be selected based on the current
// time in nanoseconds.
func NewGridMazeWithSeed(height, width int, seed int64) (*Grid, error) {
	toReturn, e := NewGrid(height, width)
	if e != nil {
		return nil, e
	}
	e = toReturn.RegenerateFromSeed(seed)
	if e != nil {
		return nil, fmt.Errorf("Error generating maze: %w", e)
	}
	return toReturn, nil
}

// Re-carves the grid from the top-left cell, using a generator seeded with
// the given value. Non-positive seeds are replaced with the current time.
func (g *Grid) RegenerateFromSeed(seed int64) error {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	gen := NewGenerator(WithSeed(seed))
	return gen.Generate(context.Background(), g, Coordinate{0, 0})
}
