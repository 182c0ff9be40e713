// Package mapping loads the bundled accession/symbol tables and builds the
// lookup maps used for conversion.
package mapping

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"regexp"
	"strings"
)

//go:embed data/hg38_table.tsv data/mm10_table.tsv
var resources embed.FS

var versionSuffix = regexp.MustCompile(`\.\d+$`)

// StripVersion removes a trailing .<digits> version suffix from an
// accession ID. IDs without a version suffix are returned unchanged.
func StripVersion(id string) string {
	return versionSuffix.ReplaceAllString(id, "")
}

// Pair is one mapping table row.
type Pair struct {
	Accession string
	Symbol    string
}

// Table holds a loaded mapping table and its lookup maps.
// Lookups keep the first occurrence when the table carries duplicate keys.
type Table struct {
	build Build
	pairs []Pair

	idToSymbol map[string]string // keyed on version-stripped accessions
	symbolToID map[string]string // values keep the original version suffix
}

func resourceName(b Build) (string, error) {
	switch b {
	case BuildHG38:
		return "data/hg38_table.tsv", nil
	case BuildMM10:
		return "data/mm10_table.tsv", nil
	}
	return "", fmt.Errorf("no mapping resource for genome build %q", b)
}

// Load parses the bundled mapping table for the given build.
func Load(b Build) (*Table, error) {
	name, err := resourceName(b)
	if err != nil {
		return nil, err
	}

	f, err := resources.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open mapping resource for %s: %w", b, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse mapping resource for %s: %w", b, err)
	}
	t.build = b
	return t, nil
}

// Parse reads accession<TAB>symbol rows with no header line.
// Rows without two non-empty fields are skipped.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{
		idToSymbol: make(map[string]string),
		symbolToID: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			continue
		}

		p := Pair{Accession: fields[0], Symbol: fields[1]}
		t.pairs = append(t.pairs, p)

		base := StripVersion(p.Accession)
		if _, ok := t.idToSymbol[base]; !ok {
			t.idToSymbol[base] = p.Symbol
		}
		if _, ok := t.symbolToID[p.Symbol]; !ok {
			t.symbolToID[p.Symbol] = p.Accession
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mapping table: %w", err)
	}

	return t, nil
}

// Build returns the genome build the table was loaded for.
func (t *Table) Build() Build {
	return t.build
}

// Len returns the number of mapping rows.
func (t *Table) Len() int {
	return len(t.pairs)
}

// Pairs returns the mapping rows in file order.
func (t *Table) Pairs() []Pair {
	return t.pairs
}

// Symbol looks up the symbol for an accession ID. The raw value is tried
// first, then the version-stripped value, so both versioned and
// unversioned accessions resolve.
func (t *Table) Symbol(id string) (string, bool) {
	if s, ok := t.idToSymbol[id]; ok {
		return s, true
	}
	s, ok := t.idToSymbol[StripVersion(id)]
	return s, ok
}

// Accession looks up the versioned accession ID for a symbol.
func (t *Table) Accession(symbol string) (string, bool) {
	id, ok := t.symbolToID[symbol]
	return id, ok
}
