package maze

import (
	"fmt"
)

// Implements the disjoint set data structure from CLRS.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// Returns a new disjointSet containing only itself.
func newDisjointSet() *disjointSet {
	toReturn := disjointSet{
		rank: 0,
	}
	toReturn.parent = &toReturn
	return &toReturn
}

// Finds the unique "root" of a disjoint set. May adjust parent pointers.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

// Adjusts both s and other to become part of the same set. May adjust parent
// pointers and ranks.
func (s *disjointSet) union(other *disjointSet) {
	x := s.findSet()
	y := other.findSet()
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}

// Checks that the opened walls form a spanning tree over the cells: every
// cell is visited, every open wall joins two cells that weren't already
// connected, and everything ends up in one set. Returns an error wrapping
// ErrNotPerfect if not.
func (g *Grid) Verify() error {
	cellsWide := (g.width + 1) / 2
	sets := make([]*disjointSet, g.CellCount())
	for i := range sets {
		sets[i] = newDisjointSet()
	}
	setFor := func(x, y int) *disjointSet {
		return sets[(y/2)*cellsWide+(x/2)]
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			e := &(g.entities[y][x])
			if (e.kind == CellKind) && !e.visited {
				return fmt.Errorf("%w: cell %s was never visited",
					ErrNotPerfect, e.coord)
			}
			if !e.IsOpen() {
				continue
			}
			// An odd x means the wall separates cells to its left and right,
			// otherwise it separates cells above and below it.
			var a, b *disjointSet
			if (x % 2) != 0 {
				a, b = setFor(x-1, y), setFor(x+1, y)
			} else {
				a, b = setFor(x, y-1), setFor(x, y+1)
			}
			if a.findSet() == b.findSet() {
				return fmt.Errorf("%w: opening wall %s creates a cycle",
					ErrNotPerfect, e.coord)
			}
			a.union(b)
		}
	}

	root := sets[0].findSet()
	for i := range sets {
		if sets[i].findSet() != root {
			return fmt.Errorf("%w: cell %s isn't connected to %s",
				ErrNotPerfect, Coordinate{(i % cellsWide) * 2,
					(i / cellsWide) * 2}, Coordinate{0, 0})
		}
	}
	return nil
}
