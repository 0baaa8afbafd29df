package export

import (
	"bufio"
	"io"
	"secretgrid/decoder"
)

// TextExporter writes the rendered lines, each followed by a newline
type TextExporter struct{}

// NewTextExporter creates a new text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export writes one line per grid row
func (e *TextExporter) Export(res *decoder.Result, w io.Writer) error {
	if err := checkResult(res); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range res.Lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// GetFileExtension returns the recommended file extension
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Text"
}
