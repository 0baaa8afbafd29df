// Package decoder runs the full pipeline from a document to printable lines:
// fetch, table extraction, coordinate parsing, grid building and rendering.
package decoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"secretgrid/canvas"
	"secretgrid/core"
	"secretgrid/importer"
	"secretgrid/validation"
)

// ErrNoValidCoordinates is returned when a table was found but none of its
// rows held numeric coordinates.
var ErrNoValidCoordinates = errors.New("no valid coordinate data found")

// ErrGridTooLarge is returned when the triples span more cells than the
// decoder is allowed to allocate.
var ErrGridTooLarge = errors.New("grid too large")

// DefaultMaxCells bounds the grid area. It admits a full
// importer.MaxCoordinate row or column, but not both at once.
const DefaultMaxCells = 4 << 20

// Result holds everything produced by one decode.
type Result struct {
	Source      string
	Orientation core.Orientation
	Triples     []core.Triple
	Skipped     int
	Grid        *canvas.Grid
	Lines       []string
	Warnings    []validation.Issue
}

// Decoder holds the collaborators of the pipeline. It has no mutable state
// after construction and is safe for concurrent use.
type Decoder struct {
	fetcher     *importer.Fetcher
	registry    *importer.Registry
	orientation core.Orientation
	validate    bool
	strict      bool
	maxCells    int
	logger      *log.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithFetcher replaces the document fetcher.
func WithFetcher(f *importer.Fetcher) Option {
	return func(d *Decoder) { d.fetcher = f }
}

// WithRegistry replaces the importer registry.
func WithRegistry(r *importer.Registry) Option {
	return func(d *Decoder) { d.registry = r }
}

// WithOrientation sets the vertical print order.
func WithOrientation(o core.Orientation) Option {
	return func(d *Decoder) { d.orientation = o }
}

// WithValidation enables triple validation. In strict mode conflicting
// duplicate coordinates fail the decode.
func WithValidation(strict bool) Option {
	return func(d *Decoder) {
		d.validate = true
		d.strict = strict
	}
}

// WithMaxCells sets the largest grid area, in cells, a decode may build.
func WithMaxCells(n int) Option {
	return func(d *Decoder) { d.maxCells = n }
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *log.Logger) Option {
	return func(d *Decoder) { d.logger = l }
}

// New creates a decoder. Without options it fetches with the default
// fetcher, renders TopDown, skips validation and logs nothing.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		fetcher:     importer.NewFetcher(),
		registry:    importer.NewRegistry(),
		orientation: core.TopDown,
		maxCells:    DefaultMaxCells,
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Orientation returns the configured orientation.
func (d *Decoder) Orientation() core.Orientation {
	return d.orientation
}

// DecodeURL fetches the document behind docURL as HTML and decodes its first
// table.
func (d *Decoder) DecodeURL(ctx context.Context, docURL string) (*Result, error) {
	exportURL := importer.ExportURL(docURL)
	if exportURL != docURL {
		d.logger.Printf("export url: %s", exportURL)
	} else {
		d.logger.Printf("unrecognised document url, fetching as is: %s", docURL)
	}

	body, err := d.fetcher.Fetch(ctx, exportURL)
	if err != nil {
		return nil, err
	}
	d.logger.Printf("fetched %d bytes", len(body))

	imp, err := d.registry.Lookup("html")
	if err != nil {
		return nil, err
	}
	records, err := imp.Import(string(body))
	if err != nil {
		return nil, err
	}
	return d.decodeRecords(exportURL, records)
}

// DecodeReader decodes local content. An empty format auto-detects it.
func (d *Decoder) DecodeReader(r io.Reader, source, format string) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	content := string(data)

	var records []core.Record
	if format == "" {
		records, err = d.registry.Import(content)
	} else {
		records, err = d.registry.ImportWithFormat(content, format)
	}
	if err != nil {
		return nil, err
	}
	return d.decodeRecords(source, records)
}

// DecodeTriples builds and renders already-parsed triples.
func (d *Decoder) DecodeTriples(source string, triples []core.Triple) (*Result, error) {
	if len(triples) == 0 {
		return nil, ErrNoValidCoordinates
	}
	if err := d.checkBounds(triples); err != nil {
		return nil, err
	}
	res := &Result{
		Source:      source,
		Orientation: d.orientation,
		Triples:     triples,
	}

	if d.validate {
		v := validation.NewTripleValidator()
		v.SetStrictMode(d.strict)
		res.Warnings = v.Validate(triples)
		for _, issue := range res.Warnings {
			d.logger.Printf("warning: %s", issue)
		}
		if v.HasErrors(res.Warnings) {
			return res, fmt.Errorf("validation failed: %d conflicting coordinates", countKind(res.Warnings, validation.DuplicateCoordinate))
		}
	}

	res.Grid = canvas.Build(triples)
	res.Lines = canvas.Render(res.Grid, d.orientation)

	w, h := res.Grid.Size()
	d.logger.Printf("grid %dx%d, %d cells filled, %s", w, h, res.Grid.Filled(), d.orientation)
	return res, nil
}

func (d *Decoder) decodeRecords(source string, records []core.Record) (*Result, error) {
	triples, skipped := importer.ParseRecords(records)
	d.logger.Printf("%d rows, %d parsed, %d skipped", len(records), len(triples), skipped)

	res, err := d.DecodeTriples(source, triples)
	if res != nil {
		res.Skipped = skipped
	}
	return res, err
}

// checkBounds rejects triples that Build cannot place or that would need a
// grid larger than maxCells. Widths are compared before multiplying so the
// area cannot overflow.
func (d *Decoder) checkBounds(triples []core.Triple) error {
	maxX, maxY := 0, 0
	for _, t := range triples {
		if t.X < 0 || t.Y < 0 {
			return fmt.Errorf("negative coordinate (%d,%d)", t.X, t.Y)
		}
		maxX = max(maxX, t.X)
		maxY = max(maxY, t.Y)
	}
	if maxX >= d.maxCells || maxY >= d.maxCells || (maxX+1)*(maxY+1) > d.maxCells {
		return fmt.Errorf("%w: coordinates reach (%d,%d), limit is %d cells", ErrGridTooLarge, maxX, maxY, d.maxCells)
	}
	return nil
}

func countKind(issues []validation.Issue, kind validation.IssueKind) int {
	n := 0
	for _, issue := range issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}
