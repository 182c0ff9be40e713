package tabular

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DelimiterFor returns the cell delimiter implied by a file path:
// comma for .csv, tab for everything else. A .gz suffix is ignored.
func DelimiterFor(path string) rune {
	p := strings.TrimSuffix(strings.ToLower(path), ".gz")
	if strings.HasSuffix(p, ".csv") {
		return ','
	}
	return '\t'
}

// Read loads a delimited file into a Table.
// Supports both plain and gzipped (.gz) input.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	// Check for gzip magic number (0x1f, 0x8b)
	buf := make([]byte, 2)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek input file: %w", err)
	}
	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	t, err := Parse(r, DelimiterFor(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// Parse reads a delimited table with a header row. Rows shorter than the
// header are padded with empty cells; cell values are never reinterpreted.
func Parse(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited table: %w", err)
	}
	if len(records) == 0 {
		return nil, &ParseError{Line: 1, Message: "no header line found"}
	}

	t := &Table{Header: records[0]}
	for _, rec := range records[1:] {
		for len(rec) < len(t.Header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
