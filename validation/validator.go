// Package validation reports suspicious input that still decodes, such as
// conflicting glyphs at one coordinate.
package validation

import (
	"fmt"
	"secretgrid/canvas"
	"secretgrid/core"
	"unicode/utf8"
)

// IssueKind classifies a validation finding.
type IssueKind int

const (
	// DuplicateCoordinate: two different glyphs were placed at one cell.
	DuplicateCoordinate IssueKind = iota
	// WideGlyph: the glyph occupies two terminal cells and shifts its row.
	WideGlyph
	// MultiRuneGlyph: the cell text is longer than one character.
	MultiRuneGlyph
)

// String returns the string representation of an IssueKind.
func (k IssueKind) String() string {
	switch k {
	case DuplicateCoordinate:
		return "duplicate-coordinate"
	case WideGlyph:
		return "wide-glyph"
	case MultiRuneGlyph:
		return "multi-rune-glyph"
	default:
		return "unknown"
	}
}

// Issue is one finding with location information.
type Issue struct {
	X, Y    int
	Kind    IssueKind
	Glyph   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("(%d,%d) %s: %s", i.X, i.Y, i.Kind, i.Message)
}

// TripleValidator checks decoded triples before they are placed.
type TripleValidator struct {
	issues     []Issue
	strictMode bool // Treat duplicate coordinates as errors
	checkWidth bool // Report wide and multi-rune glyphs
}

// NewTripleValidator creates a new validator with default settings.
func NewTripleValidator() *TripleValidator {
	return &TripleValidator{
		strictMode: false,
		checkWidth: true,
	}
}

// SetStrictMode enables or disables strict validation.
func (v *TripleValidator) SetStrictMode(strict bool) {
	v.strictMode = strict
}

// SetCheckWidth enables or disables glyph width checks.
func (v *TripleValidator) SetCheckWidth(check bool) {
	v.checkWidth = check
}

// Validate checks triples in input order and returns every finding.
//
// A coordinate that receives different non-empty glyphs is reported once per
// overwrite, naming the glyph that ends up in the cell. Repeating the same
// glyph is not reported.
func (v *TripleValidator) Validate(triples []core.Triple) []Issue {
	v.issues = nil

	placed := make(map[core.Point]string, len(triples))
	for _, t := range triples {
		if t.Glyph == "" {
			continue
		}

		p := t.Point()
		if prev, ok := placed[p]; ok && prev != t.Glyph {
			v.addIssue(t, DuplicateCoordinate,
				"%q replaces %q; the later row wins", t.Glyph, prev)
		}
		placed[p] = t.Glyph

		if v.checkWidth {
			v.checkGlyph(t)
		}
	}

	return v.issues
}

func (v *TripleValidator) checkGlyph(t core.Triple) {
	if n := utf8.RuneCountInString(t.Glyph); n > 1 {
		v.addIssue(t, MultiRuneGlyph, "cell text %q has %d characters and is kept whole", t.Glyph, n)
		return
	}
	if canvas.GlyphWidth(t.Glyph) > 1 {
		v.addIssue(t, WideGlyph, "%q is %d cells wide; the rest of the row shifts right",
			t.Glyph, canvas.GlyphWidth(t.Glyph))
	}
}

func (v *TripleValidator) addIssue(t core.Triple, kind IssueKind, format string, args ...interface{}) {
	v.issues = append(v.issues, Issue{
		X:       t.X,
		Y:       t.Y,
		Kind:    kind,
		Glyph:   t.Glyph,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any issue is fatal under the current mode.
// Only duplicate coordinates are fatal, and only in strict mode.
func (v *TripleValidator) HasErrors(issues []Issue) bool {
	if !v.strictMode {
		return false
	}
	for _, issue := range issues {
		if issue.Kind == DuplicateCoordinate {
			return true
		}
	}
	return false
}
