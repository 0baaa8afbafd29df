package importer

import (
	"errors"
	"secretgrid/core"
	"strconv"
	"strings"
)

// MaxCoordinate is the largest x or y accepted from a document. Rows beyond
// it are skipped like any other unusable row.
const MaxCoordinate = 10000

// ParseRecords converts raw records into triples. A record whose x or y is
// not an integer in [0, MaxCoordinate] is skipped and counted; that is not
// an error.
func ParseRecords(records []core.Record) (triples []core.Triple, skipped int) {
	triples = make([]core.Triple, 0, len(records))
	for _, rec := range records {
		x, ok := parseCoordinate(rec.RawX)
		if !ok {
			skipped++
			continue
		}
		y, ok := parseCoordinate(rec.RawY)
		if !ok {
			skipped++
			continue
		}
		triples = append(triples, core.Triple{
			X:     x,
			Y:     y,
			Glyph: strings.TrimSpace(rec.Glyph),
		})
	}
	return triples, skipped
}

// parseCoordinate accepts base-10 integers in [0, MaxCoordinate]. Atoi reports
// nothing but syntax and range errors, so any other error panics.
func parseCoordinate(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) &&
			(errors.Is(numErr.Err, strconv.ErrSyntax) || errors.Is(numErr.Err, strconv.ErrRange)) {
			return 0, false
		}
		panic(err)
	}
	return n, n >= 0 && n <= MaxCoordinate
}
