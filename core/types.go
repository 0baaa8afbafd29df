// Package core contains the fundamental types shared by the secretgrid packages.
package core

import (
	"fmt"
	"strings"
)

// Point represents a 2D coordinate in the grid.
type Point struct {
	X, Y int
}

// Triple is one placed character: the glyph that belongs at (X, Y).
// Glyph is the trimmed text of a table cell and may be empty.
type Triple struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
}

// Point returns the coordinate of the triple.
func (t Triple) Point() Point {
	return Point{X: t.X, Y: t.Y}
}

// Record is one raw table row before numeric parsing.
// The column order in the source document is x, character, y.
type Record struct {
	RawX  string
	Glyph string
	RawY  string
}

// Orientation maps logical row indexes to vertical print order.
type Orientation int

const (
	// TopDown prints row 0 first (screen convention, origin top-left).
	TopDown Orientation = iota
	// BottomUp prints the highest row first (Cartesian convention, origin bottom-left).
	BottomUp
)

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	switch o {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	default:
		return "unknown"
	}
}

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == BottomUp {
		return TopDown
	}
	return BottomUp
}

// ParseOrientation converts a string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-down", "topdown", "down", "screen":
		return TopDown, nil
	case "bottom-up", "bottomup", "up", "cartesian":
		return BottomUp, nil
	default:
		return TopDown, fmt.Errorf("unknown orientation: %q", s)
	}
}
