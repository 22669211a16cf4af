package maze

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap(t *testing.T) {
	t.Run("Fresh grid", func(t *testing.T) {
		g, e := NewGrid(3, 3)
		require.NoError(t, e)
		assert.Equal(t, [][]uint8{
			{1, 0, 1},
			{0, 0, 0},
			{1, 0, 1},
		}, g.Bitmap())
	})

	t.Run("Generated grid", func(t *testing.T) {
		g := newGeneratedGrid(t, 11, 15, 8, Coordinate{0, 0})
		first := g.Bitmap()
		assert.Equal(t, first, g.Bitmap())
		ones := 0
		for y, row := range first {
			require.Len(t, row, 15)
			for x, v := range row {
				ones += int(v)
				// Points never become open space.
				if Classify(x, y) == PointKind {
					assert.Equal(t, uint8(0), v)
				}
			}
		}
		assert.Len(t, first, 11)
		assert.Equal(t, g.CellCount()+g.OpenWallCount(), ones)
	})

	t.Run("Result is independent of the grid", func(t *testing.T) {
		g := newGeneratedGrid(t, 5, 5, 8, Coordinate{0, 0})
		b := g.Bitmap()
		b[0][0] = 0
		assert.Equal(t, uint8(1), g.Bitmap()[0][0])
	})
}

func TestGridImage(t *testing.T) {
	g := newGeneratedGrid(t, 7, 9, 2, Coordinate{0, 0})
	bounds := g.Bounds()
	assert.Equal(t, 9, bounds.Dx())
	assert.Equal(t, 7, bounds.Dy())
	bitmap := g.Bitmap()
	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			want := color.Color(color.Black)
			if bitmap[y][x] == 1 {
				want = color.White
			}
			assert.Equal(t, want, g.At(x, y))
		}
	}
	assert.Equal(t, color.Transparent, g.At(-1, 0))
	assert.Equal(t, color.Transparent, g.At(9, 0))
}

func TestString(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	require.NoError(t, g.OpenWall(Coordinate{1, 0}))
	assert.Equal(t, " c  n  c \n w  .  w \n c  w  c \n", g.String())
}
