package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/genemap/internal/convert"
	"github.com/inodb/genemap/internal/mapping"
	"github.com/inodb/genemap/internal/tabular"
)

func newConvertCmd() *cobra.Command {
	var (
		buildName     string
		column        string
		directionName string
		keepVersion   bool
		outputDir     string
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "convert <input-file>",
		Short: "Convert a column of gene identifiers",
		Long: `Convert one column of a CSV/TSV file between Ensembl accession IDs and
gene symbols. Converted values are appended as a new column named
<column>_symbol or <column>_ensembl, and the result is written as
<basename>_converted<ext> next to the input file unless an output
directory or file is given.

Values missing from the mapping table, and empty cells, are passed
through unchanged.`,
		Example: `  # Translate Ensembl IDs to symbols
  genemap convert --column gene_id --direction id2symbol counts.csv

  # Translate symbols to unversioned Ensembl IDs for mouse
  genemap convert -b mm10_v25 -c gene -d symbol2id --keep-version=false degs.tsv

  # Write the result into a different directory
  genemap convert -c gene_id -O /data/out expression.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file values apply when the flag was not given.
			if !cmd.Flags().Changed("build") && viper.IsSet("build") {
				buildName = viper.GetString("build")
			}
			if !cmd.Flags().Changed("direction") && viper.IsSet("direction") {
				directionName = viper.GetString("direction")
			}
			if !cmd.Flags().Changed("keep-version") && viper.IsSet("keep_version") {
				keepVersion = viper.GetBool("keep_version")
			}
			if !cmd.Flags().Changed("output-dir") && viper.IsSet("output_dir") {
				outputDir = viper.GetString("output_dir")
			}

			return runConvert(args[0], buildName, column, directionName, keepVersion, outputDir, outputFile)
		},
	}

	cmd.Flags().StringVarP(&buildName, "build", "b", string(mapping.BuildHG38), "Genome build: hg38_v43 or mm10_v25")
	cmd.Flags().StringVarP(&column, "column", "c", "", "Name of the column to convert (required)")
	cmd.Flags().StringVarP(&directionName, "direction", "d", "id2symbol", "Conversion direction: id2symbol or symbol2id")
	cmd.Flags().BoolVar(&keepVersion, "keep-version", true, "Keep the accession version suffix (symbol2id only)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "O", "", "Output directory (default: input file's directory)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (overrides the derived name)")
	cmd.MarkFlagRequired("column")

	return cmd
}

func runConvert(inputPath, buildName, column, directionName string, keepVersion bool, outputDir, outputFile string) error {
	build, err := mapping.ParseBuild(buildName)
	if err != nil {
		return err
	}
	direction, err := convert.ParseDirection(directionName)
	if err != nil {
		return err
	}

	table, err := mapping.Load(build)
	if err != nil {
		return err
	}
	logger.Info("mapping table loaded",
		zap.String("build", string(build)),
		zap.Int("genes", table.Len()))

	in, err := tabular.Read(inputPath)
	if err != nil {
		return err
	}

	conv := convert.New(table)
	conv.SetLogger(logger)

	out, stats, err := conv.Apply(in, convert.Options{
		Column:      column,
		Direction:   direction,
		KeepVersion: keepVersion,
	})
	if err != nil {
		return err
	}

	dest := outputFile
	if dest == "" {
		dest = tabular.OutputPath(inputPath, outputDir)
	}
	if err := tabular.Write(out, dest); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Converted %d of %d rows (%d unmapped, %d empty)\n",
		stats.Converted, stats.Rows, stats.Unmapped, stats.Empty)
	fmt.Fprintf(os.Stderr, "Output file: %s\n", dest)

	return nil
}
