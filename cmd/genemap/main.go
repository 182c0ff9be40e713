// Package main provides the genemap command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is configured in the root command's PersistentPreRunE and is a
// no-op until then.
var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "genemap",
		Short: "Convert gene identifiers between Ensembl IDs and symbols",
		Long: `genemap converts a column of gene identifiers in a CSV/TSV file between
Ensembl accession IDs and gene symbols, using mapping tables bundled into
the binary for the hg38_v43 and mm10_v25 genome builds.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			return initLogger(verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newBuildsCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.genemap.yaml and GENEMAP_* environment variables.
// A missing config file is not an error.
func initConfig() error {
	viper.SetEnvPrefix("GENEMAP")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	viper.SetConfigFile(filepath.Join(home, ".genemap.yaml"))

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func initLogger(verbose bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = l
	return nil
}
