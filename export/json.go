package export

import (
	"encoding/json"
	"io"
	"secretgrid/decoder"

	"github.com/google/uuid"
)

// Document is the JSON shape of a decoded grid.
type Document struct {
	ID          string    `json:"id"`
	Source      string    `json:"source,omitempty"`
	Orientation string    `json:"orientation"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Filled      int       `json:"filled"`
	Skipped     int       `json:"skipped"`
	Lines       []string  `json:"lines"`
	Warnings    []Warning `json:"warnings,omitempty"`
}

// Warning is a validation finding in the JSON output.
type Warning struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// JSONExporter exports decoded grids to JSON format
type JSONExporter struct {
	newID func() string
}

// NewJSONExporter creates a new JSON exporter. Every export gets a fresh id.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{newID: func() string { return uuid.New().String() }}
}

// Export writes the result as an indented JSON document
func (e *JSONExporter) Export(res *decoder.Result, w io.Writer) error {
	if err := checkResult(res); err != nil {
		return err
	}

	width, height := res.Grid.Size()
	doc := Document{
		ID:          e.newID(),
		Source:      res.Source,
		Orientation: res.Orientation.String(),
		Width:       width,
		Height:      height,
		Filled:      res.Grid.Filled(),
		Skipped:     res.Skipped,
		Lines:       res.Lines,
	}
	if doc.Lines == nil {
		doc.Lines = []string{}
	}
	for _, issue := range res.Warnings {
		doc.Warnings = append(doc.Warnings, Warning{
			X:       issue.X,
			Y:       issue.Y,
			Kind:    issue.Kind.String(),
			Message: issue.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
