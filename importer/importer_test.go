package importer_test

import (
	"secretgrid/core"
	"secretgrid/importer"
	"strings"
	"testing"
)

// pipeImporter reads "x|glyph|y" lines.
type pipeImporter struct{}

func (pipeImporter) CanImport(content string) bool { return strings.Contains(content, "|") }

func (pipeImporter) Import(content string) ([]core.Record, error) {
	var records []core.Record
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if f := strings.Split(line, "|"); len(f) >= 3 {
			records = append(records, core.Record{RawX: f[0], Glyph: f[1], RawY: f[2]})
		}
	}
	return records, nil
}

func (pipeImporter) GetFormatName() string { return "pipe" }
func (pipeImporter) GetFileExtensions() []string { return []string{".pipe"} }

func TestRegistry_DetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"HTML document", "<html><body><table></table></body></html>", "html", false},
		{"Bare table", "<table><tr><td>1</td></tr></table>", "html", false},
		{"CSV", "x,char,y\n1,A,2\n", "csv", false},
		{"TSV", "x\tchar\ty\n", "csv", false},
		{"Prose", "once upon a time", "", true},
	}

	registry := importer.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp, err := registry.DetectFormat(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && imp.GetFormatName() != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", imp.GetFormatName(), tt.want)
			}
		})
	}
}

func TestRegistry_ImportWithFormat(t *testing.T) {
	registry := importer.NewRegistry()

	records, err := registry.ImportWithFormat("x,c,y\n1,A,2\n", "CSV")
	if err != nil {
		t.Fatalf("ImportWithFormat() failed: %v", err)
	}
	if len(records) != 1 || records[0].Glyph != "A" {
		t.Errorf("unexpected records: %+v", records)
	}

	if _, err := registry.ImportWithFormat("", "xlsx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRegistry_FormatForFile(t *testing.T) {
	registry := importer.NewRegistry()
	tests := map[string]string{
		"secret.html":  "html",
		"secret.HTM":   "html",
		"coords.csv":   "csv",
		"coords.tsv":   "csv",
		"notes.txt":    "",
		"no-extension": "",
	}
	for name, want := range tests {
		if got := registry.FormatForFile(name); got != want {
			t.Errorf("FormatForFile(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	formats := importer.NewRegistry().Formats()
	if len(formats) != 2 || formats[0] != "html" || formats[1] != "csv" {
		t.Errorf("Formats() = %v", formats)
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := importer.NewRegistry()
	registry.Register(pipeImporter{})

	if got := registry.Formats(); len(got) != 3 || got[2] != "pipe" {
		t.Fatalf("Formats() = %v", got)
	}
	if got := registry.FormatForFile("secret.pipe"); got != "pipe" {
		t.Errorf("FormatForFile() = %q, want pipe", got)
	}

	records, err := registry.Import("3|Q|1")
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	want := []core.Record{{RawX: "3", Glyph: "Q", RawY: "1"}}
	if len(records) != 1 || records[0] != want[0] {
		t.Errorf("Import() = %+v, want %+v", records, want)
	}

	// Built-in importers still win detection for their own content.
	if imp, err := registry.DetectFormat("<table></table>"); err != nil || imp.GetFormatName() != "html" {
		t.Errorf("DetectFormat() = %v, %v", imp, err)
	}
}
