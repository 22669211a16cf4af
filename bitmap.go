package maze

import (
	"image"
	"image/color"
)

// Returns a new 2D array with the grid's dimensions, indexed [y][x]. Entries
// are 1 for open space (cells and opened walls) and 0 for standing walls and
// points. Doesn't modify the grid, and may be called mid-generation.
func (g *Grid) Bitmap() [][]uint8 {
	toReturn := make([][]uint8, g.height)
	for y := range g.entities {
		row := make([]uint8, g.width)
		for x := range g.entities[y] {
			if g.entities[y][x].IsTraversable() {
				row[x] = 1
			}
		}
		toReturn[y] = row
	}
	return toReturn
}

func (g *Grid) ColorModel() color.Model {
	return color.GrayModel
}

// One pixel per entity.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Open space is white, everything else is black.
func (g *Grid) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= g.width) || (y >= g.height) {
		return color.Transparent
	}
	if g.entities[y][x].IsTraversable() {
		return color.White
	}
	return color.Black
}
