package terminal

import (
	"secretgrid/canvas"
	"secretgrid/core"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// screenLine reads row y of the screen as text.
func screenLine(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func sampleGrid() *canvas.Grid {
	return canvas.Build([]core.Triple{
		{X: 0, Y: 0, Glyph: "A"},
		{X: 1, Y: 0, Glyph: "B"},
		{X: 0, Y: 1, Glyph: "C"},
	})
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewer_DrawAndFlip(t *testing.T) {
	screen := newTestScreen(t, 40, 5)
	v := NewViewer(screen, sampleGrid(), core.TopDown, "secret")

	v.Draw()
	assert.Equal(t, "AB", screenLine(screen, 0, 2))
	assert.Equal(t, "C ", screenLine(screen, 1, 2))
	assert.Contains(t, screenLine(screen, 4, 40), "top-down")

	assert.False(t, v.HandleKey(runeKey('o')))
	assert.Equal(t, core.BottomUp, v.Orientation())

	v.Draw()
	assert.Equal(t, "C ", screenLine(screen, 0, 2))
	assert.Equal(t, "AB", screenLine(screen, 1, 2))
	assert.Contains(t, screenLine(screen, 4, 40), "bottom-up")
}

func TestViewer_QuitKeys(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	v := NewViewer(screen, sampleGrid(), core.TopDown, "t")

	assert.True(t, v.HandleKey(runeKey('q')))
	assert.True(t, v.HandleKey(key(tcell.KeyEscape)))
	assert.True(t, v.HandleKey(key(tcell.KeyCtrlC)))
	assert.False(t, v.HandleKey(runeKey('x')))
}

func TestViewer_ScrollIsClamped(t *testing.T) {
	triples := make([]core.Triple, 0, 30)
	for i := 0; i < 30; i++ {
		triples = append(triples, core.Triple{X: i, Y: i, Glyph: "#"})
	}
	screen := newTestScreen(t, 10, 6) // 5 visible rows
	v := NewViewer(screen, canvas.Build(triples), core.TopDown, "diag")

	v.HandleKey(key(tcell.KeyUp))
	v.HandleKey(key(tcell.KeyLeft))
	x, y := v.Offset()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	for i := 0; i < 100; i++ {
		v.HandleKey(runeKey('j'))
		v.HandleKey(runeKey('l'))
	}
	x, y = v.Offset()
	assert.Equal(t, 20, x)
	assert.Equal(t, 25, y)

	v.Draw()
	// Row 25 holds its glyph in column 25, which is column 5 of the view.
	assert.Equal(t, "     #    ", screenLine(screen, 0, 10))

	v.HandleKey(key(tcell.KeyHome))
	x, y = v.Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestViewer_WideGlyphs(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	grid := canvas.Build([]core.Triple{{X: 0, Y: 0, Glyph: "世"}, {X: 1, Y: 0, Glyph: "a"}})
	v := NewViewer(screen, grid, core.TopDown, "w")
	v.Draw()

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '世', r)
	r, _, _, _ = screen.GetContent(2, 0)
	assert.Equal(t, 'a', r)
}

func TestViewer_Run(t *testing.T) {
	screen := newTestScreen(t, 20, 4)
	v := NewViewer(screen, sampleGrid(), core.TopDown, "run")

	done := make(chan error, 1)
	go func() { done <- v.Run() }()

	screen.InjectKey(tcell.KeyRune, 'o', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not exit")
	}
	assert.Equal(t, core.BottomUp, v.Orientation())
}
