// Package render draws maze grids to raster images, giving every cell a
// square of gapSize pixels and every wall or point a single pixel of
// thickness.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	maze "github.com/yalue/dfs_maze"
)

var (
	CellColor       = color.RGBA{25, 25, 0, 255}
	ClosedWallColor = color.RGBA{200, 0, 0, 255}
	OpenWallColor   = color.RGBA{0, 0, 0, 255}
	PointColor      = color.RGBA{0, 0, 200, 255}
)

// Draws a single grid onto a gg drawing context.
type Renderer struct {
	grid *maze.Grid
	// Pixel offsets of the start of each column and row. Each has one more
	// entry than the grid has columns or rows; the last is the image size.
	xOffsets []int
	yOffsets []int
	dc       *gg.Context
	// The first error encountered while drawing from the step observer.
	observerErr error
}

// Returns the pixel offset of each index along an axis of the given length,
// followed by the total length in pixels.
func axisOffsets(count, gapSize int) []int {
	toReturn := make([]int, count+1)
	for i := 0; i < count; i++ {
		step := 1
		if (i % 2) == 0 {
			step = gapSize
		}
		toReturn[i+1] = toReturn[i] + step
	}
	return toReturn
}

// Returns a new Renderer for the grid. Nothing is drawn until DrawAll or
// DrawEntity is called. The gap size is the width of a cell, in pixels.
func New(grid *maze.Grid, gapSize int) (*Renderer, error) {
	if gapSize < 1 {
		return nil, fmt.Errorf("gap size must be at least 1, got %d", gapSize)
	}
	toReturn := &Renderer{
		grid:     grid,
		xOffsets: axisOffsets(grid.Width(), gapSize),
		yOffsets: axisOffsets(grid.Height(), gapSize),
	}
	w, h := toReturn.Size()
	toReturn.dc = gg.NewContext(w, h)
	toReturn.dc.ClearWithColor(gg.Black)
	return toReturn, nil
}

// Returns the width and height of the rendered image, in pixels.
func (r *Renderer) Size() (int, int) {
	return r.xOffsets[len(r.xOffsets)-1], r.yOffsets[len(r.yOffsets)-1]
}

// Returns the pixel rectangle covered by the entity at c.
func (r *Renderer) EntityBounds(c maze.Coordinate) image.Rectangle {
	return image.Rect(r.xOffsets[c.X], r.yOffsets[c.Y], r.xOffsets[c.X+1],
		r.yOffsets[c.Y+1])
}

func entityColor(e maze.Entity) color.Color {
	switch e.Kind() {
	case maze.CellKind:
		return CellColor
	case maze.WallKind:
		if e.IsOpen() {
			return OpenWallColor
		}
		return ClosedWallColor
	}
	return PointColor
}

// Draws a single entity, using its current state.
func (r *Renderer) DrawEntity(e maze.Entity) error {
	c := e.Coordinate()
	if (c.X < 0) || (c.Y < 0) || (c.X >= r.grid.Width()) ||
		(c.Y >= r.grid.Height()) {
		return fmt.Errorf("%s is outside the grid", c)
	}
	rect := r.EntityBounds(c)
	r.dc.SetColor(entityColor(e))
	r.dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()))
	e2 := r.dc.Fill()
	if e2 != nil {
		return fmt.Errorf("Error drawing %s: %w", e, e2)
	}
	return nil
}

// Draws every entity in the grid.
func (r *Renderer) DrawAll() error {
	for _, row := range r.grid.Entities() {
		for _, ent := range row {
			e := r.DrawEntity(ent)
			if e != nil {
				return e
			}
		}
	}
	return nil
}

// Returns an observer that redraws the entities touched by each generation
// step, so the image tracks the grid while it is being carved. Drawing
// errors don't reach the generator; check ObserverErr afterwards.
func (r *Renderer) Observer() maze.StepObserver {
	return func(s maze.Step) {
		toDraw := []maze.Entity{s.Current}
		if s.Kind == maze.StepCarve {
			toDraw = append(toDraw, s.Wall, s.Next)
		}
		for _, ent := range toDraw {
			e := r.DrawEntity(ent)
			if (e != nil) && (r.observerErr == nil) {
				r.observerErr = e
			}
		}
	}
}

// Returns the first drawing error hit by the Observer, if any.
func (r *Renderer) ObserverErr() error {
	return r.observerErr
}

func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

func (r *Renderer) SavePNG(path string) error {
	e := r.dc.SavePNG(path)
	if e != nil {
		return fmt.Errorf("Error saving %s: %w", path, e)
	}
	return nil
}

func (r *Renderer) Close() error {
	return r.dc.Close()
}
