package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statgen/gwasplot/internal/layout"
	"github.com/statgen/gwasplot/internal/output"
	"github.com/statgen/gwasplot/internal/render"
)

func newManhattanCmd() *cobra.Command {
	var (
		in        string
		db        string
		study     string
		annotPath string
		outDir    string
		dumpPath  string
		title     string
	)

	cmd := &cobra.Command{
		Use:   "manhattan",
		Short: "Render a Manhattan plot",
		Long:  "Render per-variant -log10(p) against genomic position, colored by chromosome.",
		Example: `  gwasplot manhattan --in gwas.tsv --out-dir plots/
  gwasplot manhattan --in gwas.tsv --annot genes.tsv --out-dir plots/
  gwasplot manhattan --db stats.duckdb --study discovery --out-dir plots/
  cat gwas.tsv | gwasplot manhattan --in - --out-dir plots/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			records, err := loadRecords(in, db, study)
			if err != nil {
				return err
			}

			l, err := layout.Compute(records)
			if err != nil {
				return err
			}

			annotations, err := loadAnnotations(annotPath)
			if err != nil {
				return err
			}
			highlights := layout.ResolveHighlights(l, annotations)

			if dumpPath != "" {
				if err := dumpLayout(dumpPath, l); err != nil {
					return err
				}
			}

			r := render.NewRenderer()
			r.SetLogger(logger)

			opts := plotOptions()
			opts.Title = title

			return r.Manhattan(l, highlights, opts, filepath.Join(outDir, "manhattan_plot.png"))
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Summary statistics TSV ('-' for stdin)")
	cmd.Flags().StringVar(&db, "db", "", "DuckDB store with imported summary statistics")
	cmd.Flags().StringVar(&study, "study", "", "Study name inside the DuckDB store")
	cmd.Flags().StringVar(&annotPath, "annot", "", "Gene annotation table (SNP, GENE) for highlights")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory to write manhattan_plot.png into")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "Also write plot-ready coordinates to this TSV path")
	cmd.Flags().StringVar(&title, "title", "Manhattan Plot", "Plot title")

	return cmd
}

func dumpLayout(path string, l *layout.Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	lw := output.NewLayoutWriter(f)
	if err := lw.WriteHeader(); err != nil {
		return err
	}
	if err := lw.WriteLayout(l); err != nil {
		return err
	}
	if err := lw.WriteTicks(l); err != nil {
		return err
	}
	return lw.Flush()
}
