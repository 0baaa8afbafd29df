// Package importer turns source documents into raw coordinate records: it
// derives export URLs, fetches documents and extracts table rows.
package importer

import (
	"fmt"
	"path/filepath"
	"secretgrid/core"
	"strings"
)

// Importer extracts raw records from the content of a tabular document.
type Importer interface {
	// CanImport checks if the given content can be imported by this importer
	CanImport(content string) bool

	// Import returns the data rows of the document's coordinate table
	Import(content string) ([]core.Record, error)

	// GetFormatName returns the short name of the format
	GetFormatName() string

	// GetFileExtensions returns common file extensions for this format
	GetFileExtensions() []string
}

// Registry manages available importers
type Registry struct {
	importers []Importer
}

// NewRegistry creates a registry holding the HTML and CSV importers.
// HTML is tried first during detection.
func NewRegistry() *Registry {
	return &Registry{
		importers: []Importer{
			NewHTMLImporter(),
			NewCSVImporter(),
		},
	}
}

// Register adds a new importer to the registry
func (r *Registry) Register(importer Importer) {
	r.importers = append(r.importers, importer)
}

// DetectFormat attempts to detect the format of the given content
func (r *Registry) DetectFormat(content string) (Importer, error) {
	for _, imp := range r.importers {
		if imp.CanImport(content) {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("unable to detect format")
}

// Import attempts to import content using auto-detection
func (r *Registry) Import(content string) ([]core.Record, error) {
	importer, err := r.DetectFormat(content)
	if err != nil {
		return nil, err
	}
	return importer.Import(content)
}

// ImportWithFormat imports content using a specific format
func (r *Registry) ImportWithFormat(content, format string) ([]core.Record, error) {
	imp, err := r.Lookup(format)
	if err != nil {
		return nil, err
	}
	return imp.Import(content)
}

// Lookup returns the importer registered under a format name.
func (r *Registry) Lookup(format string) (Importer, error) {
	format = strings.ToLower(format)
	for _, imp := range r.importers {
		if strings.ToLower(imp.GetFormatName()) == format {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// FormatForFile returns the format whose extensions match filename, or "".
func (r *Registry) FormatForFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ""
	}
	for _, imp := range r.importers {
		for _, e := range imp.GetFileExtensions() {
			if e == ext {
				return imp.GetFormatName()
			}
		}
	}
	return ""
}

// Formats returns the names of the available import formats
func (r *Registry) Formats() []string {
	formats := make([]string, len(r.importers))
	for i, imp := range r.importers {
		formats[i] = imp.GetFormatName()
	}
	return formats
}
