package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"secretgrid/core"
	"secretgrid/decoder"
	"secretgrid/export"
	"secretgrid/importer"
	"secretgrid/terminal"
	"secretgrid/version"
	"strings"
)

// defaultDocumentURL is decoded when no source is given.
const defaultDocumentURL = "https://docs.google.com/document/d/1qsD4zdqKcZT4UAuOQIW2nJZigKDWNOiMMNoi-5Zwgz4"

// Exit codes
const (
	exitOK         = 0
	exitError      = 1
	exitValidation = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("secretgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		orientation = fs.String("orientation", envOr("SECRETGRID_ORIENTATION", "top-down"), "Vertical order: top-down (row 0 first) or bottom-up (highest row first)")
		format      = fs.String("format", "text", "Output format: text, json, png")
		outputFile  = fs.String("o", "", "Output file (default: stdout)")
		inputFormat = fs.String("input-format", "", "Input format for local files: html, csv (auto-detect if not specified)")
		timeout     = fs.Duration("timeout", importer.DefaultTimeout, "Timeout for fetching a document")
		tui         = fs.Bool("tui", false, "Show the decoded grid in an interactive viewer")
		validate    = fs.Bool("validate", false, "Report duplicate coordinates and wide glyphs")
		strict      = fs.Bool("strict", false, "Fail when different glyphs share a coordinate (implies -validate)")
		verbose     = fs.Bool("v", false, "Log progress to stderr")
		showVersion = fs.Bool("version", false, "Print version and exit")
		help        = fs.Bool("help", false, "Show help")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: secretgrid [options] [url | file | -]\n\n")
		fmt.Fprintf(stderr, "Decodes a secret message stored as (x, character, y) rows in a document table.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  secretgrid                                   # Decode the default document\n")
		fmt.Fprintf(stderr, "  secretgrid https://docs.google.com/document/d/<id>/edit\n")
		fmt.Fprintf(stderr, "  secretgrid -orientation bottom-up coords.csv\n")
		fmt.Fprintf(stderr, "  secretgrid -format png -o secret.png <url>\n")
		fmt.Fprintf(stderr, "  curl -s <export-url> | secretgrid -input-format html -\n")
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  SECRETGRID_URL          Default document URL\n")
		fmt.Fprintf(stderr, "  SECRETGRID_ORIENTATION  Default orientation\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	if *help {
		fs.Usage()
		return exitOK
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	o, err := core.ParseOrientation(*orientation)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	exportFormat, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Available formats: text, json, png\n")
		return exitError
	}
	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating exporter: %v\n", err)
		return exitError
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "secretgrid: ", log.Ltime)
	}

	opts := []decoder.Option{
		decoder.WithOrientation(o),
		decoder.WithLogger(logger),
		decoder.WithFetcher(importer.NewFetcher(
			importer.WithTimeout(*timeout),
			importer.WithUserAgent("secretgrid/"+version.Version),
		)),
	}
	if *validate || *strict {
		opts = append(opts, decoder.WithValidation(*strict))
	}
	dec := decoder.New(opts...)

	source := envOr("SECRETGRID_URL", defaultDocumentURL)
	if fs.NArg() > 0 {
		source = fs.Arg(0)
	}

	res, err := decodeSource(dec, source, *inputFormat, stdin)
	if res != nil && (*validate || *strict) && !*verbose {
		for _, issue := range res.Warnings {
			fmt.Fprintf(stderr, "Warning: %s\n", issue)
		}
	}
	if err != nil {
		reportError(stderr, err)
		if res != nil && len(res.Warnings) > 0 {
			return exitValidation
		}
		return exitError
	}

	if res.Skipped > 0 {
		logger.Printf("skipped %d rows without numeric coordinates", res.Skipped)
	}

	if *tui {
		if err := terminal.Show(res.Grid, o, res.Source); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	if *outputFile != "" {
		if err := writeFile(*outputFile, exporter, res); err != nil {
			fmt.Fprintf(stderr, "Error writing to file: %v\n", err)
			return exitError
		}
		fmt.Fprintf(stderr, "Successfully exported to %s\n", *outputFile)
		return exitOK
	}

	if err := exporter.Export(res, stdout); err != nil {
		fmt.Fprintf(stderr, "Error exporting: %v\n", err)
		return exitError
	}
	return exitOK
}

// decodeSource fetches URLs and reads anything else as a local file.
// "-" reads standard input.
func decodeSource(dec *decoder.Decoder, source, inputFormat string, stdin io.Reader) (*decoder.Result, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return dec.DecodeURL(context.Background(), source)
	}

	if source == "-" {
		return dec.DecodeReader(stdin, "stdin", inputFormat)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	if inputFormat == "" {
		inputFormat = importer.NewRegistry().FormatForFile(source)
	}
	return dec.DecodeReader(file, source, inputFormat)
}

// reportError prints one distinguishable message per failure class.
func reportError(w io.Writer, err error) {
	var fetchErr *importer.FetchError
	switch {
	case errors.As(err, &fetchErr):
		fmt.Fprintf(w, "Error fetching document: %v\n", err)
	case errors.Is(err, importer.ErrNoTable):
		fmt.Fprintln(w, "No table found in the document")
	case errors.Is(err, decoder.ErrNoValidCoordinates):
		fmt.Fprintln(w, "No valid coordinate data found")
	default:
		fmt.Fprintf(w, "Error processing document: %v\n", err)
	}
}

func writeFile(path string, exporter export.Exporter, res *decoder.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.Export(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
