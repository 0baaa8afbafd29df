package canvas

import (
	"secretgrid/core"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Blank is the content of every cell no glyph was placed in.
const Blank = " "

// Ambiguous-width runes (box drawing, block elements) are measured as narrow
// regardless of the locale, matching how the decoded art is usually drawn.
var widthCondition = &runewidth.Condition{StrictEmojiNeutral: true}

// GlyphWidth returns the display width of a glyph in terminal cells.
func GlyphWidth(glyph string) int {
	return widthCondition.StringWidth(glyph)
}

// Grid is the bounding grid of a set of triples, indexed [row][col].
//
// A Grid is built once by Build and never mutated afterwards, so it is safe
// for concurrent reads.
//
// Coordinate System:
//   - Origin (0,0) is row 0, column 0
//   - X selects the column, Y selects the row
//   - Vertical print order is chosen at render time, see Render
//
// Each cell holds one atomic glyph: the whole text of a table cell, usually a
// single character. Glyphs are never split or merged.
type Grid struct {
	cells  [][]string
	width  int
	height int
}

// Build places every triple into the smallest grid anchored at (0,0) that
// contains all of their coordinates. Cells without a glyph hold Blank.
//
// Triples are applied in input order, so a later glyph at the same
// coordinate replaces an earlier one. Triples with an empty glyph still count
// toward the grid size but never overwrite a cell.
//
// Build returns nil for empty input; callers treat that as nothing to render.
// Coordinates must be non-negative.
func Build(triples []core.Triple) *Grid {
	if len(triples) == 0 {
		return nil
	}

	maxX, maxY := triples[0].X, triples[0].Y
	for _, t := range triples[1:] {
		if t.X > maxX {
			maxX = t.X
		}
		if t.Y > maxY {
			maxY = t.Y
		}
	}

	g := newGrid(maxX+1, maxY+1)
	for _, t := range triples {
		if t.Glyph == "" {
			continue
		}
		g.cells[t.Y][t.X] = t.Glyph
	}
	return g
}

func newGrid(width, height int) *Grid {
	cells := make([][]string, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]string, width)
		for x := 0; x < width; x++ {
			cells[y][x] = Blank
		}
	}
	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Size returns the width (columns) and height (rows) of the grid.
func (g *Grid) Size() (width, height int) {
	if g == nil {
		return 0, 0
	}
	return g.width, g.height
}

// Get returns the glyph at the given position.
// Returns Blank if the position is out of bounds.
func (g *Grid) Get(p core.Point) string {
	if g == nil || p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return Blank
	}
	return g.cells[p.Y][p.X]
}

// Rows returns a copy of the cells in storage order (row 0 first).
func (g *Grid) Rows() [][]string {
	if g == nil {
		return nil
	}
	rows := make([][]string, g.height)
	for y, row := range g.cells {
		rows[y] = append([]string(nil), row...)
	}
	return rows
}

// Filled returns the number of cells holding a glyph.
func (g *Grid) Filled() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Blank {
				n++
			}
		}
	}
	return n
}

// DisplayWidth returns the widest row in terminal cells. It differs from the
// column count when glyphs are wide (CJK, emoji) or longer than one rune.
func (g *Grid) DisplayWidth() int {
	if g == nil {
		return 0
	}
	widest := 0
	for _, row := range g.cells {
		w := 0
		for _, c := range row {
			w += GlyphWidth(c)
		}
		if w > widest {
			widest = w
		}
	}
	return widest
}

// String returns the grid in storage order with newlines between rows.
func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y, row := range g.cells {
		writeRow(&sb, row)
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, row []string) {
	for _, c := range row {
		sb.WriteString(c)
	}
}
