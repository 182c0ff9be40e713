// Package convert applies accession/symbol translation to one column of a
// table.
package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/genemap/internal/mapping"
	"github.com/inodb/genemap/internal/tabular"
)

// Direction selects which way values are translated.
type Direction int

const (
	// IDToSymbol translates Ensembl accession IDs to gene symbols.
	IDToSymbol Direction = iota
	// SymbolToID translates gene symbols to Ensembl accession IDs.
	SymbolToID
)

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "id2symbol", "id-to-symbol":
		return IDToSymbol, nil
	case "symbol2id", "symbol-to-id":
		return SymbolToID, nil
	}
	return 0, fmt.Errorf("unknown direction %q (supported: id2symbol, symbol2id)", s)
}

func (d Direction) String() string {
	if d == SymbolToID {
		return "symbol2id"
	}
	return "id2symbol"
}

// columnSuffix is appended to the source column name to form the output
// column name.
func (d Direction) columnSuffix() string {
	if d == SymbolToID {
		return "_ensembl"
	}
	return "_symbol"
}

// Options configures a single conversion run.
type Options struct {
	Column      string
	Direction   Direction
	KeepVersion bool // symbol2id only: keep the accession's version suffix
}

// Stats summarizes a conversion run.
type Stats struct {
	Rows      int
	Converted int
	Unmapped  int
	Empty     int
}

// Converter translates one table column using a loaded mapping table.
type Converter struct {
	table  *mapping.Table
	logger *zap.Logger
}

// New creates a converter for the given mapping table.
func New(table *mapping.Table) *Converter {
	return &Converter{
		table:  table,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for run summary messages.
func (c *Converter) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Apply returns a copy of t with one appended column of converted values.
// The input table is not modified. Unmapped and empty cells pass through
// verbatim; conversion never fails on a value. If the derived column name
// already exists in the header, that column is overwritten in place.
func (c *Converter) Apply(t *tabular.Table, opts Options) (*tabular.Table, Stats, error) {
	srcIdx, err := t.ColumnIndex(opts.Column)
	if err != nil {
		return nil, Stats{}, err
	}

	out := t.Clone()
	newCol := opts.Column + opts.Direction.columnSuffix()

	dstIdx := -1
	for i, col := range out.Header {
		if col == newCol {
			dstIdx = i
			break
		}
	}
	if dstIdx == -1 {
		out.Header = append(out.Header, newCol)
	}

	var stats Stats
	for i, row := range out.Rows {
		stats.Rows++

		val := ""
		if srcIdx < len(row) {
			val = row[srcIdx]
		}

		conv, ok := c.convertValue(val, opts)
		switch {
		case val == "":
			stats.Empty++
		case ok:
			stats.Converted++
		default:
			stats.Unmapped++
		}

		if dstIdx >= 0 {
			row[dstIdx] = conv
		} else {
			out.Rows[i] = append(row, conv)
		}
	}

	c.logger.Info("conversion complete",
		zap.String("column", opts.Column),
		zap.String("direction", opts.Direction.String()),
		zap.Int("rows", stats.Rows),
		zap.Int("converted", stats.Converted),
		zap.Int("unmapped", stats.Unmapped),
		zap.Int("empty", stats.Empty))

	return out, stats, nil
}

// convertValue translates a single cell. Empty and unmapped values are
// returned unchanged with ok=false.
func (c *Converter) convertValue(val string, opts Options) (string, bool) {
	if val == "" {
		return val, false
	}

	if opts.Direction == SymbolToID {
		id, ok := c.table.Accession(val)
		if !ok {
			return val, false
		}
		if !opts.KeepVersion {
			id = mapping.StripVersion(id)
		}
		return id, true
	}

	sym, ok := c.table.Symbol(val)
	if !ok {
		return val, false
	}
	return sym, true
}
