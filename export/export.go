// Package export turns a maze's bitmap into image files.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	maze "github.com/yalue/dfs_maze"
	"github.com/yalue/image_utils"
)

// Controls how a bitmap image is produced. Scale is the number of pixels per
// grid entity along each axis, and Border is the width of a solid border, in
// pixels, added after scaling.
type Options struct {
	Scale  int
	Border int
}

// Returns the maze's bitmap as an image, with white pixels for open space
// and black for walls and points. Pixels are computed on demand from the
// maze, so no full-size raster is allocated here.
func BitmapImage(m maze.Maze, opts Options) (image.Image, error) {
	if opts.Scale < 1 {
		return nil, fmt.Errorf("scale must be at least 1, got %d", opts.Scale)
	}
	if opts.Border < 0 {
		return nil, fmt.Errorf("border can't be negative, got %d", opts.Border)
	}
	bounds := m.Bounds()
	var toReturn image.Image = m
	if opts.Scale != 1 {
		toReturn = image_utils.ResizeImage(m, bounds.Dx()*opts.Scale,
			bounds.Dy()*opts.Scale)
	}
	if opts.Border > 0 {
		toReturn = image_utils.AddImageBorder(toReturn, color.Black,
			opts.Border)
	}
	return toReturn, nil
}

// Encodes the maze's bitmap image as a PNG to w.
func WritePNG(w io.Writer, m maze.Maze, opts Options) error {
	pic, e := BitmapImage(m, opts)
	if e != nil {
		return e
	}
	e = png.Encode(w, pic)
	if e != nil {
		return fmt.Errorf("Error encoding PNG: %w", e)
	}
	return nil
}
