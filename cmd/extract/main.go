// Command extract prints the coordinate triples of a document as JSON,
// without building a grid. Useful for inspecting what a table contains.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"secretgrid/core"
	"secretgrid/importer"
	"strings"
)

type extraction struct {
	Source  string        `json:"source"`
	Skipped int           `json:"skipped"`
	Triples []core.Triple `json:"triples"`
}

func main() {
	var (
		inputFile = flag.String("i", "", "Input URL or file path")
		format    = flag.String("f", "", "Format (html, csv) - auto-detect if not specified")
		output    = flag.String("o", "", "Output file path (default: stdout)")
	)

	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	source, content, err := load(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	registry := importer.NewRegistry()

	var records []core.Record
	if *format != "" {
		records, err = registry.ImportWithFormat(content, *format)
	} else {
		records, err = registry.Import(content)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing document: %v\n", err)
		os.Exit(1)
	}

	triples, skipped := importer.ParseRecords(records)

	jsonData, err := json.MarshalIndent(extraction{Source: source, Skipped: skipped, Triples: triples}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting to JSON: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		err = os.WriteFile(*output, jsonData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Extracted %d triples to %s\n", len(triples), *output)
	} else {
		fmt.Println(string(jsonData))
	}
}

// load fetches URLs through their export form and reads anything else from disk.
func load(input string) (source, content string, err error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		source = importer.ExportURL(input)
		body, err := importer.NewFetcher().Fetch(context.Background(), source)
		if err != nil {
			return source, "", err
		}
		return source, string(body), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return input, "", err
	}
	return input, string(data), nil
}
