package importer

import (
	"errors"
	"fmt"
	"secretgrid/core"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoTable is returned when a document contains no table element.
var ErrNoTable = errors.New("no table found in the document")

// HTMLImporter extracts records from the first table of an HTML document.
type HTMLImporter struct{}

// NewHTMLImporter creates a new HTML table importer.
func NewHTMLImporter() *HTMLImporter {
	return &HTMLImporter{}
}

// CanImport reports whether the content looks like HTML markup.
func (h *HTMLImporter) CanImport(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "<table") ||
		strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<!doctype html")
}

// Import parses the markup and returns one record per data row of the first
// table. The header row is skipped, as are rows with fewer than three cells.
func (h *HTMLImporter) Import(content string) ([]core.Record, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, ErrNoTable
	}

	rows := tableRows(table)
	if len(rows) == 0 {
		return []core.Record{}, nil
	}

	records := make([]core.Record, 0, len(rows)-1)
	for _, tr := range rows[1:] {
		cells := rowCells(tr)
		if len(cells) < 3 {
			continue
		}
		records = append(records, core.Record{
			RawX:  cellText(cells[0]),
			Glyph: cellText(cells[1]),
			RawY:  cellText(cells[2]),
		})
	}
	return records, nil
}

// GetFormatName returns the format name.
func (h *HTMLImporter) GetFormatName() string {
	return "html"
}

// GetFileExtensions returns common file extensions for this format.
func (h *HTMLImporter) GetFileExtensions() []string {
	return []string{".html", ".htm"}
}

// findFirst returns the first element with the given tag in document order.
func findFirst(n *html.Node, tag atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// tableRows collects the rows of table in document order, descending through
// thead/tbody/tfoot but not into nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				rows = append(rows, c)
			case atom.Table:
				// nested table rows belong to the nested table
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

// rowCells returns the data cells of a row. Header cells are not data.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Td {
			cells = append(cells, c)
		}
	}
	return cells
}

// cellText returns the concatenated text of a cell with surrounding
// whitespace removed. Elements such as <br> contribute nothing.
func cellText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
