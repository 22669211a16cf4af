package maze

import (
	"strings"
)

// Returns the 3-character token used for an entity in the text dump.
func entityToken(e *Entity) string {
	switch e.kind {
	case CellKind:
		return " c "
	case WallKind:
		if e.open {
			return " n "
		}
		return " w "
	}
	return " . "
}

// Returns a row-major dump of the grid for terminal inspection. Cells are
// "c", closed walls "w", opened walls "n" and points ".", each padded to three
// characters, with one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width*3 + 1))
	for y := range g.entities {
		for x := range g.entities[y] {
			sb.WriteString(entityToken(&(g.entities[y][x])))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
