// Package terminal shows a decoded grid in an interactive full-screen view.
package terminal

import (
	"fmt"
	"secretgrid/canvas"
	"secretgrid/core"
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Viewer displays a grid on a tcell screen with scrolling and an orientation
// toggle. It is driven from a single goroutine.
type Viewer struct {
	screen      tcell.Screen
	grid        *canvas.Grid
	title       string
	orientation core.Orientation
	offsetX     int
	offsetY     int
}

// NewViewer creates a viewer for grid on an initialised screen.
func NewViewer(screen tcell.Screen, grid *canvas.Grid, o core.Orientation, title string) *Viewer {
	return &Viewer{
		screen:      screen,
		grid:        grid,
		title:       title,
		orientation: o,
	}
}

// Orientation returns the orientation currently shown.
func (v *Viewer) Orientation() core.Orientation {
	return v.orientation
}

// Offset returns the current scroll position.
func (v *Viewer) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// Run draws and handles events until the user quits or the screen closes.
func (v *Viewer) Run() error {
	for {
		v.Draw()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
		}
	}
}

// HandleKey applies a key press and reports whether the viewer should exit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyHome:
		v.offsetX, v.offsetY = 0, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.scroll(0, -1)
		case 'j':
			v.scroll(0, 1)
		case 'h':
			v.scroll(-1, 0)
		case 'l':
			v.scroll(1, 0)
		case 'o':
			v.orientation = v.orientation.Opposite()
		}
	}
	return false
}

// scroll moves the view, keeping it within the content.
func (v *Viewer) scroll(dx, dy int) {
	viewW, viewH := v.viewport()
	contentH := len(v.rows())
	contentW := v.grid.DisplayWidth()

	v.offsetX = clamp(v.offsetX+dx, 0, max(0, contentW-viewW))
	v.offsetY = clamp(v.offsetY+dy, 0, max(0, contentH-viewH))
}

// viewport returns the area available for the grid (all but the status line).
func (v *Viewer) viewport() (w, h int) {
	w, h = v.screen.Size()
	return w, max(0, h-1)
}

// rows returns the grid rows in display order.
func (v *Viewer) rows() [][]string {
	rows := v.grid.Rows()
	if v.orientation == core.BottomUp {
		slices.Reverse(rows)
	}
	return rows
}

// Draw renders the visible part of the grid and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	viewW, viewH := v.viewport()
	style := tcell.StyleDefault

	rows := v.rows()
	for sy := 0; sy < viewH && v.offsetY+sy < len(rows); sy++ {
		col := -v.offsetX
		for _, glyph := range rows[v.offsetY+sy] {
			width := max(1, canvas.GlyphWidth(glyph))
			if col >= 0 && col+width <= viewW {
				runes := []rune(glyph)
				v.screen.SetContent(col, sy, runes[0], runes[1:], style)
			}
			col += width
			if col >= viewW {
				break
			}
		}
	}

	w, h := v.grid.Size()
	status := fmt.Sprintf(" %s  %dx%d  %s  [o] flip  [q] quit ", v.title, w, h, v.orientation)
	statusStyle := style.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= viewW {
			break
		}
		v.screen.SetContent(x, viewH, r, nil, statusStyle)
		x++
	}

	v.screen.Show()
}

// Show opens the terminal, runs a viewer for grid and restores the terminal.
func Show(grid *canvas.Grid, o core.Orientation, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	// restore the terminal even on panic
	defer screen.Fini()

	return NewViewer(screen, grid, o, title).Run()
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
