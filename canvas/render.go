package canvas

import (
	"secretgrid/core"
	"strings"
)

// Render turns the grid into printable lines, one per row, each row's cells
// concatenated from column 0 rightward.
//
// TopDown emits rows in storage order (row 0 first). BottomUp emits them
// reversed (row maxY first), for data whose origin is the bottom-left corner.
//
// A nil grid renders to an empty slice.
func Render(g *Grid, o core.Orientation) []string {
	if g == nil {
		return []string{}
	}

	lines := make([]string, 0, g.height)
	var sb strings.Builder
	for i := 0; i < g.height; i++ {
		y := i
		if o == core.BottomUp {
			y = g.height - 1 - i
		}
		sb.Reset()
		sb.Grow(g.width)
		writeRow(&sb, g.cells[y])
		lines = append(lines, sb.String())
	}
	return lines
}

// RenderString renders the grid and joins the lines with newlines.
func RenderString(g *Grid, o core.Orientation) string {
	return strings.Join(Render(g, o), "\n")
}
