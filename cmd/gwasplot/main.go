// Package main provides the gwasplot command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/statgen/gwasplot/internal/duckdb"
	"github.com/statgen/gwasplot/internal/gwas"
	"github.com/statgen/gwasplot/internal/render"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gwasplot",
		Short:   "Diagnostic plots for GWAS summary statistics",
		Long:    "gwasplot renders Manhattan, QQ and Miami plots from GWAS summary statistics.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Example: `  gwasplot manhattan --in gwas.tsv --out-dir plots/
  gwasplot qq --in gwas.tsv --out-dir plots/
  gwasplot miami --top discovery.tsv --bottom replication.tsv --out-dir plots/`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newManhattanCmd())
	cmd.AddCommand(newQQCmd())
	cmd.AddCommand(newMiamiCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.gwasplot.yaml and sets plot defaults.
func initConfig() {
	viper.SetConfigName(".gwasplot")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetDefault("plot.width", 1600)
	viper.SetDefault("plot.height", 800)
	viper.SetDefault("plot.point_radius", 2.0)
	viper.SetDefault("plot.sig_threshold", render.GenomeWideSignificance)
	viper.SetDefault("qq.conf_points", 1500)
	viper.SetDefault("qq.alpha", 0.05)

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger: a console logger with --verbose,
// otherwise a no-op.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// plotOptions builds render options from the resolved configuration.
func plotOptions() render.Options {
	return render.Options{
		Width:        viper.GetInt("plot.width"),
		Height:       viper.GetInt("plot.height"),
		PointRadius:  viper.GetFloat64("plot.point_radius"),
		SigThreshold: viper.GetFloat64("plot.sig_threshold"),
	}
}

// loadRecords reads summary statistics either from a TSV file (--in) or
// from a DuckDB store (--db plus --study).
func loadRecords(in, db, study string) ([]gwas.Record, error) {
	switch {
	case in != "" && db != "":
		return nil, fmt.Errorf("--in and --db are mutually exclusive")
	case in != "":
		p, err := gwas.NewParser(in)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		return p.ReadAll()
	case db != "":
		if study == "" {
			return nil, fmt.Errorf("--study is required with --db")
		}
		s, err := duckdb.Open(db)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.Records(study, 1)
	default:
		return nil, fmt.Errorf("either --in or --db is required")
	}
}

// loadAnnotations reads the optional gene annotation table.
func loadAnnotations(path string) ([]gwas.Annotation, error) {
	if path == "" {
		return nil, nil
	}
	return gwas.LoadAnnotations(path)
}
