package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"secretgrid/core"
	"strings"
)

// CSVImporter reads records from comma- or tab-separated text, as produced by
// a spreadsheet export of the coordinate table.
type CSVImporter struct{}

// NewCSVImporter creates a new CSV/TSV importer.
func NewCSVImporter() *CSVImporter {
	return &CSVImporter{}
}

// CanImport reports whether the first line looks like a delimited header.
func (c *CSVImporter) CanImport(content string) bool {
	header, _, _ := strings.Cut(strings.TrimLeft(content, "\ufeff \r\n"), "\n")
	if strings.Contains(header, "<") {
		return false
	}
	return strings.Count(header, ",") >= 2 || strings.Count(header, "\t") >= 2
}

// Import returns one record per data row. The first row is the header and is
// skipped, as are rows with fewer than three fields.
func (c *CSVImporter) Import(content string) ([]core.Record, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	header, _, _ := strings.Cut(content, "\n")

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if strings.Contains(header, "\t") {
		r.Comma = '\t'
	}

	var records []core.Record
	first := true
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing csv: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(fields) < 3 {
			continue
		}
		records = append(records, core.Record{
			RawX:  strings.TrimSpace(fields[0]),
			Glyph: strings.TrimSpace(fields[1]),
			RawY:  strings.TrimSpace(fields[2]),
		})
	}
	return records, nil
}

// GetFormatName returns the format name.
func (c *CSVImporter) GetFormatName() string {
	return "csv"
}

// GetFileExtensions returns common file extensions for this format.
func (c *CSVImporter) GetFileExtensions() []string {
	return []string{".csv", ".tsv"}
}
