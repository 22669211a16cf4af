package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Marks every cell of g as visited without opening anything.
func visitAll(g *Grid) {
	for y := range g.entities {
		for x := range g.entities[y] {
			if g.entities[y][x].kind == CellKind {
				g.entities[y][x].visited = true
			}
		}
	}
}

func TestVerify(t *testing.T) {
	t.Run("Unvisited cell", func(t *testing.T) {
		g, e := NewGrid(3, 3)
		require.NoError(t, e)
		assert.ErrorIs(t, g.Verify(), ErrNotPerfect)
	})

	t.Run("Disconnected", func(t *testing.T) {
		g, e := NewGrid(3, 3)
		require.NoError(t, e)
		visitAll(g)
		require.NoError(t, g.OpenWall(Coordinate{1, 0}))
		require.NoError(t, g.OpenWall(Coordinate{0, 1}))
		assert.ErrorIs(t, g.Verify(), ErrNotPerfect)
	})

	t.Run("Cycle", func(t *testing.T) {
		g, e := NewGrid(3, 3)
		require.NoError(t, e)
		visitAll(g)
		for _, c := range []Coordinate{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
			require.NoError(t, g.OpenWall(c))
		}
		e = g.Verify()
		assert.ErrorIs(t, e, ErrNotPerfect)
		assert.Contains(t, e.Error(), "cycle")
	})

	t.Run("Hand-made spanning tree", func(t *testing.T) {
		g, e := NewGrid(3, 3)
		require.NoError(t, e)
		visitAll(g)
		for _, c := range []Coordinate{{1, 0}, {0, 1}, {1, 2}} {
			require.NoError(t, g.OpenWall(c))
		}
		assert.NoError(t, g.Verify())
	})
}

func TestDisjointSet(t *testing.T) {
	a := newDisjointSet()
	b := newDisjointSet()
	c := newDisjointSet()
	assert.NotSame(t, a.findSet(), b.findSet())
	a.union(b)
	assert.Same(t, a.findSet(), b.findSet())
	assert.NotSame(t, a.findSet(), c.findSet())
	c.union(a)
	assert.Same(t, b.findSet(), c.findSet())
}
