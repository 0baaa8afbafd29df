// Package export writes a decoded grid in various output formats
package export

import (
	"fmt"
	"io"
	"secretgrid/decoder"
	"strings"
)

// Format represents an export format
type Format string

const (
	// FormatText writes the rendered lines, one per row (default)
	FormatText Format = "text"
	// FormatJSON writes the lines plus decode metadata as JSON
	FormatJSON Format = "json"
	// FormatPNG draws the grid as an image
	FormatPNG Format = "png"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export writes the decoded result to w
	Export(res *decoder.Result, w io.Writer) error
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatPNG:
		return NewPNGExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "png", "image":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatText,
		FormatJSON,
		FormatPNG,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatText: "Rendered lines (default)",
		FormatJSON: "Lines with grid size, skipped rows and warnings",
		FormatPNG:  "Grid drawn as a PNG image",
	}
}

func checkResult(res *decoder.Result) error {
	if res == nil {
		return fmt.Errorf("result is nil")
	}
	return nil
}
