package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/inodb/genemap/internal/tabular"
)

func newPreviewCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview <input-file>",
		Short: "Show the first rows of a tabular file",
		Long: `Print the header and first rows of a CSV/TSV file as an aligned table.
Useful for finding the column name to pass to convert --column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args[0], rows)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of data rows to show")

	return cmd
}

func runPreview(path string, rows int) error {
	t, err := tabular.Read(path)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.Header, "\t"))
	for i, row := range t.Rows {
		if i >= rows {
			break
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	if len(t.Rows) > rows {
		fmt.Printf("... %d more rows\n", len(t.Rows)-rows)
	}
	return nil
}
