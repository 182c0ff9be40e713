package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath derives the destination for a converted copy of inputPath:
// <basename>_converted<ext> in outDir, or next to the input when outDir
// is empty. A .gz suffix on the input is dropped; converted output is
// written as plain text.
func OutputPath(inputPath, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	name := strings.TrimSuffix(filepath.Base(inputPath), ".gz")
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return filepath.Join(dir, base+"_converted"+ext)
}

// Write writes the table to path, delimiter chosen from the path's
// extension. The file is written to a temporary name and renamed into
// place so a failed write leaves no partial output.
func Write(t *Table, path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = DelimiterFor(path)

	if err := w.Write(t.Header); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close output file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}
