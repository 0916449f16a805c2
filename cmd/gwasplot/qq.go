package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/statgen/gwasplot/internal/output"
	"github.com/statgen/gwasplot/internal/qq"
	"github.com/statgen/gwasplot/internal/render"
)

func newQQCmd() *cobra.Command {
	var (
		in         string
		db         string
		study      string
		outDir     string
		dumpPath   string
		confPoints int
		alpha      float64
		noBand     bool
		title      string
	)

	cmd := &cobra.Command{
		Use:   "qq",
		Short: "Render a QQ plot",
		Long:  "Render observed vs. expected -log10(p) quantiles with a pointwise confidence band.",
		Example: `  gwasplot qq --in gwas.tsv --out-dir plots/
  gwasplot qq --in gwas.tsv --alpha 0.01 --out-dir plots/
  gwasplot qq --db stats.duckdb --study discovery --out-dir plots/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			records, err := loadRecords(in, db, study)
			if err != nil {
				return err
			}

			pvalues := make([]float64, len(records))
			for i, r := range records {
				pvalues[i] = r.P
			}

			res, err := qq.Transform(pvalues)
			if err != nil {
				return err
			}

			var band *qq.Band
			if !noBand {
				if !cmd.Flags().Changed("conf-points") {
					confPoints = viper.GetInt("qq.conf_points")
				}
				if !cmd.Flags().Changed("alpha") {
					alpha = viper.GetFloat64("qq.alpha")
				}
				band, err = qq.ConfidenceBand(res.N, confPoints, alpha)
				if err != nil {
					return err
				}
			}

			if dumpPath != "" {
				if err := dumpQQ(dumpPath, res, band); err != nil {
					return err
				}
			}

			r := render.NewRenderer()
			r.SetLogger(logger)

			opts := plotOptions()
			opts.Title = title

			return r.QQ(res, band, opts, filepath.Join(outDir, "qq_plot.png"))
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Summary statistics TSV ('-' for stdin)")
	cmd.Flags().StringVar(&db, "db", "", "DuckDB store with imported summary statistics")
	cmd.Flags().StringVar(&study, "study", "", "Study name inside the DuckDB store")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory to write qq_plot.png into")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "Also write quantile pairs and band to this TSV path")
	cmd.Flags().IntVar(&confPoints, "conf-points", qq.DefaultBandPoints, "Confidence band resolution (clamped to n-1)")
	cmd.Flags().Float64Var(&alpha, "alpha", qq.DefaultAlpha, "Confidence band significance level")
	cmd.Flags().BoolVar(&noBand, "no-band", false, "Skip the confidence band")
	cmd.Flags().StringVar(&title, "title", "QQ Plot", "Plot title")

	return cmd
}

func dumpQQ(path string, res *qq.Result, band *qq.Band) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	qw := output.NewQQWriter(f)
	if err := qw.WriteResult(res); err != nil {
		return err
	}
	if band != nil {
		if err := qw.WriteBand(band); err != nil {
			return err
		}
	}
	return qw.Flush()
}
