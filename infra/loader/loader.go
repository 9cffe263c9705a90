// Package loader reads the tabular inputs of a run: the plant registry, the
// fossil construction list, the per-source generation series and the
// planned-site list. Parsing is forgiving: a malformed cell becomes an
// absent optional value or zero instead of failing the row; only an
// unreadable source is fatal.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// header indexes CSV columns by name, trimmed.
type header map[string]int

func readHeader(rec []string) header {
	h := make(header, len(rec))
	for i, name := range rec {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

// field returns the trimmed cell for a named column, empty when the column
// is missing or the row is short.
func (h header) field(rec []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// optionalYear parses a year cell, rounding fractional values. Malformed or
// empty cells become nil.
func optionalYear(s string) *int {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	y := int(math.Round(f))
	return &y
}

// floatOrZero parses a numeric cell, defaulting to zero.
func floatOrZero(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// readAll decodes a whole CSV stream with relaxed field counts.
func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// openAnd wraps the open-read-close pattern of the file loaders.
func openAnd[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	out, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
