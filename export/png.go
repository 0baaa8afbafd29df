package export

import (
	"fmt"
	"io"
	"secretgrid/canvas"
	"secretgrid/core"
	"secretgrid/decoder"
	"slices"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

// PNGExporter draws each grid cell as a fixed-size monospace cell.
type PNGExporter struct {
	CellWidth  int
	CellHeight int
	Padding    int
	FontSize   float64
	Foreground string // hex colour
	Background string // hex colour
}

// NewPNGExporter creates a PNG exporter with dark glyphs on white.
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{
		CellWidth:  12,
		CellHeight: 20,
		Padding:    10,
		FontSize:   16,
		Foreground: "#000000",
		Background: "#ffffff",
	}
}

// Export draws the grid in the result's orientation and encodes it as PNG.
func (e *PNGExporter) Export(res *decoder.Result, w io.Writer) error {
	if err := checkResult(res); err != nil {
		return err
	}
	if res.Grid == nil {
		return fmt.Errorf("nothing to draw")
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: e.FontSize})
	defer face.Close()

	rows := res.Grid.Rows()
	if res.Orientation == core.BottomUp {
		slices.Reverse(rows)
	}
	cols, _ := res.Grid.Size()

	cw, ch := float64(e.CellWidth), float64(e.CellHeight)
	dc := gg.NewContext(cols*e.CellWidth+2*e.Padding, len(rows)*e.CellHeight+2*e.Padding)
	dc.SetHexColor(e.Background)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetHexColor(e.Foreground)

	for r, row := range rows {
		for c, glyph := range row {
			if glyph == canvas.Blank {
				continue
			}
			x := float64(e.Padding + c*e.CellWidth)
			y := float64(e.Padding + r*e.CellHeight)
			if h, ok := blockFill(glyph); ok {
				// block elements tile seamlessly only when drawn as rectangles
				dc.DrawRectangle(x, y+ch*h.top, cw, ch*(h.bottom-h.top))
				dc.Fill()
				continue
			}
			dc.DrawStringAnchored(glyph, x+cw/2, y+ch/2, 0.5, 0.5)
		}
	}

	return dc.EncodePNG(w)
}

type span struct{ top, bottom float64 }

// blockFill returns the vertical extent of full-width block elements.
func blockFill(glyph string) (span, bool) {
	switch glyph {
	case "█":
		return span{0, 1}, true
	case "▀":
		return span{0, 0.5}, true
	case "▄":
		return span{0.5, 1}, true
	default:
		return span{}, false
	}
}

// GetFileExtension returns the recommended file extension
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}
