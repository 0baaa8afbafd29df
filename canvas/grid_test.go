package canvas

import (
	"fmt"
	"math/rand"
	"secretgrid/core"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	assert.Nil(t, Build(nil))
	assert.Nil(t, Build([]core.Triple{}))

	var g *Grid
	w, h := g.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
	assert.Equal(t, "", g.String())
	assert.Equal(t, Blank, g.Get(core.Point{}))
}

func TestBuild_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		triples       []core.Triple
		width, height int
	}{
		{"Origin only", []core.Triple{{X: 0, Y: 0, Glyph: "A"}}, 1, 1},
		{"Single far column", []core.Triple{{X: 2, Y: 0, Glyph: "X"}}, 3, 1},
		{"Single far row", []core.Triple{{X: 0, Y: 4, Glyph: "X"}}, 1, 5},
		{"Mixed", []core.Triple{{X: 0, Y: 0, Glyph: "A"}, {X: 1, Y: 0, Glyph: "B"}, {X: 0, Y: 1, Glyph: "C"}}, 2, 2},
		{"Empty glyph extends bounds", []core.Triple{{X: 0, Y: 0, Glyph: "A"}, {X: 5, Y: 3, Glyph: ""}}, 6, 4},
		{"Unordered", []core.Triple{{X: 7, Y: 1, Glyph: "a"}, {X: 0, Y: 9, Glyph: "b"}, {X: 3, Y: 3, Glyph: "c"}}, 8, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.triples)
			require.NotNil(t, g)

			w, h := g.Size()
			assert.Equal(t, tt.width, w, "width")
			assert.Equal(t, tt.height, h, "height")

			rows := g.Rows()
			require.Len(t, rows, tt.height)
			for y, row := range rows {
				assert.Len(t, row, tt.width, "row %d", y)
			}
		})
	}
}

func TestBuild_Placement(t *testing.T) {
	g := Build([]core.Triple{{X: 0, Y: 0, Glyph: "A"}, {X: 1, Y: 0, Glyph: "B"}, {X: 0, Y: 1, Glyph: "C"}})
	require.NotNil(t, g)

	want := [][]string{
		{"A", "B"},
		{"C", " "},
	}
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, g.Filled())
	assert.Equal(t, "AB\nC ", g.String())
}

func TestBuild_DuplicateLastWriteWins(t *testing.T) {
	g := Build([]core.Triple{{X: 0, Y: 0, Glyph: "A"}, {X: 0, Y: 0, Glyph: "B"}})
	require.NotNil(t, g)
	assert.Equal(t, "B", g.Get(core.Point{X: 0, Y: 0}))

	g = Build([]core.Triple{{X: 0, Y: 0, Glyph: "B"}, {X: 0, Y: 0, Glyph: "A"}})
	assert.Equal(t, "A", g.Get(core.Point{X: 0, Y: 0}))
}

func TestBuild_EmptyGlyphDoesNotOverwrite(t *testing.T) {
	g := Build([]core.Triple{{X: 1, Y: 1, Glyph: "Q"}, {X: 1, Y: 1, Glyph: ""}})
	require.NotNil(t, g)
	assert.Equal(t, "Q", g.Get(core.Point{X: 1, Y: 1}))

	g = Build([]core.Triple{{X: 1, Y: 1, Glyph: ""}})
	assert.Equal(t, Blank, g.Get(core.Point{X: 1, Y: 1}))
	assert.Equal(t, 0, g.Filled())
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	triples := []core.Triple{{X: 0, Y: 0, Glyph: "A"}, {X: 1, Y: 1, Glyph: "B"}}
	g := Build(triples)
	triples[0].Glyph = "Z"
	assert.Equal(t, "A", g.Get(core.Point{}))

	rows := g.Rows()
	rows[0][0] = "Y"
	assert.Equal(t, "A", g.Get(core.Point{}), "Rows must return a copy")
}

func TestGrid_GetOutOfBounds(t *testing.T) {
	g := Build([]core.Triple{{X: 1, Y: 1, Glyph: "X"}})
	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 10, Y: 10}} {
		assert.Equal(t, Blank, g.Get(p), "Get(%v)", p)
	}
}

func TestGrid_DisplayWidth(t *testing.T) {
	tests := []struct {
		name    string
		triples []core.Triple
		want    int
	}{
		{"ASCII", []core.Triple{{X: 0, Y: 0, Glyph: "A"}, {X: 3, Y: 0, Glyph: "B"}}, 4},
		{"Wide glyph", []core.Triple{{X: 0, Y: 0, Glyph: "世"}, {X: 1, Y: 0, Glyph: "a"}}, 3},
		{"Block glyphs", []core.Triple{{X: 0, Y: 0, Glyph: "█"}, {X: 1, Y: 1, Glyph: "░"}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.triples).DisplayWidth())
		})
	}
	assert.Equal(t, 0, (*Grid)(nil).DisplayWidth())
}

// randomTriples produces a reproducible set of triples for property checks.
func randomTriples(r *rand.Rand, n int) []core.Triple {
	glyphs := []string{"", "A", "B", "█", "░", "x"}
	triples := make([]core.Triple, n)
	for i := range triples {
		triples[i] = core.Triple{
			X:     r.Intn(20),
			Y:     r.Intn(12),
			Glyph: glyphs[r.Intn(len(glyphs))],
		}
	}
	return triples
}

func TestBuild_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		triples := randomTriples(r, 1+r.Intn(40))
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			g := Build(triples)
			require.NotNil(t, g)

			maxX, maxY := 0, 0
			for _, tr := range triples {
				maxX = max(maxX, tr.X)
				maxY = max(maxY, tr.Y)
			}
			w, h := g.Size()
			assert.Equal(t, maxX+1, w)
			assert.Equal(t, maxY+1, h)

			// The last non-empty glyph at each coordinate is what the cell holds.
			last := map[core.Point]string{}
			for _, tr := range triples {
				if tr.Glyph != "" {
					last[tr.Point()] = tr.Glyph
				}
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					p := core.Point{X: x, Y: y}
					want, ok := last[p]
					if !ok {
						want = Blank
					}
					assert.Equal(t, want, g.Get(p), "cell %v", p)
				}
			}

			top := Render(g, core.TopDown)
			bottom := Render(g, core.BottomUp)
			reversed := slices.Clone(top)
			slices.Reverse(reversed)
			assert.Equal(t, reversed, bottom)

			// Pure: a second pass gives identical output.
			assert.Equal(t, top, Render(Build(triples), core.TopDown))
		})
	}
}
