package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ENSG00000141510.18", "ENSG00000141510"},
		{"ENSG00000141510", "ENSG00000141510"},
		{"ENSMUSG00000059552.13", "ENSMUSG00000059552"},
		{"ENSG001.3", "ENSG001"},
		{"", ""},
		{"TP53", "TP53"},
		{"ENSG001.3.2", "ENSG001.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripVersion(tt.in), "StripVersion(%q)", tt.in)
	}
}

func TestParse_BuildsLookups(t *testing.T) {
	input := "ENSG001.3\tTP53\n" +
		"ENSG002.1\tBRCA1\n"

	tbl, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())

	sym, ok := tbl.Symbol("ENSG001.3")
	require.True(t, ok)
	assert.Equal(t, "TP53", sym)

	sym, ok = tbl.Symbol("ENSG001")
	require.True(t, ok)
	assert.Equal(t, "TP53", sym)

	// Reverse lookup keeps the original version suffix
	id, ok := tbl.Accession("BRCA1")
	require.True(t, ok)
	assert.Equal(t, "ENSG002.1", id)

	_, ok = tbl.Symbol("ENSG999")
	assert.False(t, ok)
	_, ok = tbl.Accession("UNKNOWN")
	assert.False(t, ok)
}

func TestParse_FirstOccurrenceWins(t *testing.T) {
	// Duplicate accession (after version stripping) and duplicate symbol
	input := "ENSG001.3\tTP53\n" +
		"ENSG001.4\tTP53B\n" +
		"ENSG002.1\tBRCA1\n" +
		"ENSG003.2\tBRCA1\n"

	tbl, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	sym, ok := tbl.Symbol("ENSG001")
	require.True(t, ok)
	assert.Equal(t, "TP53", sym, "first accession occurrence wins")

	id, ok := tbl.Accession("BRCA1")
	require.True(t, ok)
	assert.Equal(t, "ENSG002.1", id, "first symbol occurrence wins")
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	input := "ENSG001.3\tTP53\n" +
		"ENSG_NO_SYMBOL\n" +
		"\tORPHAN\n" +
		"\n" +
		"ENSG002.1\tBRCA1\r\n"

	tbl, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())

	sym, ok := tbl.Symbol("ENSG002")
	require.True(t, ok)
	assert.Equal(t, "BRCA1", sym, "CR line endings are trimmed")
}

func TestParse_UnversionedAccession(t *testing.T) {
	// An unversioned table entry must resolve for both raw and versioned
	// query values.
	input := "ENSG001\tTP53\n"

	tbl, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	sym, ok := tbl.Symbol("ENSG001")
	require.True(t, ok)
	assert.Equal(t, "TP53", sym)

	sym, ok = tbl.Symbol("ENSG001.7")
	require.True(t, ok)
	assert.Equal(t, "TP53", sym)
}

func TestLoad_EmbeddedTables(t *testing.T) {
	hg38, err := Load(BuildHG38)
	require.NoError(t, err)
	assert.Equal(t, BuildHG38, hg38.Build())
	assert.Greater(t, hg38.Len(), 0)

	sym, ok := hg38.Symbol("ENSG00000141510")
	require.True(t, ok)
	assert.Equal(t, "TP53", sym)

	mm10, err := Load(BuildMM10)
	require.NoError(t, err)
	assert.Greater(t, mm10.Len(), 0)

	id, ok := mm10.Accession("Trp53")
	require.True(t, ok)
	assert.Equal(t, "ENSMUSG00000059552", StripVersion(id))
}

func TestLoad_ForwardReverseConsistent(t *testing.T) {
	// For every table row, the stripped accession resolves through the
	// forward lookup to the same symbol the row carries, and that symbol
	// resolves back to an accession with the same stripped base.
	for _, b := range Builds() {
		tbl, err := Load(b)
		require.NoError(t, err)

		for _, p := range tbl.Pairs() {
			sym, ok := tbl.Symbol(StripVersion(p.Accession))
			require.True(t, ok, "%s: %s", b, p.Accession)
			assert.Equal(t, p.Symbol, sym)

			id, ok := tbl.Accession(sym)
			require.True(t, ok, "%s: %s", b, sym)
			assert.Equal(t, StripVersion(p.Accession), StripVersion(id))
		}
	}
}

func TestParseBuild(t *testing.T) {
	b, err := ParseBuild("hg38_v43")
	require.NoError(t, err)
	assert.Equal(t, BuildHG38, b)

	b, err = ParseBuild("mm10_v25")
	require.NoError(t, err)
	assert.Equal(t, BuildMM10, b)

	_, err = ParseBuild("hg19")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hg19")
}
