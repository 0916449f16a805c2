package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statgen/gwasplot/internal/layout"
	"github.com/statgen/gwasplot/internal/render"
)

func newMiamiCmd() *cobra.Command {
	var (
		topPath     string
		bottomPath  string
		topAnnot    string
		bottomAnnot string
		outDir      string
		title       string
	)

	cmd := &cobra.Command{
		Use:   "miami",
		Short: "Render a Miami plot",
		Long:  "Render two Manhattan panels stacked vertically, the bottom one mirrored, for comparing two result sets.",
		Example: `  gwasplot miami --top discovery.tsv --bottom replication.tsv --out-dir plots/
  gwasplot miami --top a.tsv --bottom b.tsv --top-annot genes.tsv --out-dir plots/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			top, err := loadRecords(topPath, "", "")
			if err != nil {
				return err
			}
			bottom, err := loadRecords(bottomPath, "", "")
			if err != nil {
				return err
			}

			topAnns, err := loadAnnotations(topAnnot)
			if err != nil {
				return err
			}
			bottomAnns, err := loadAnnotations(bottomAnnot)
			if err != nil {
				return err
			}

			m, err := layout.ComposeMiami(top, bottom, topAnns, bottomAnns)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.SetLogger(logger)

			opts := plotOptions()
			opts.Title = title

			return r.Miami(m, opts, filepath.Join(outDir, "miami_plot.png"))
		},
	}

	cmd.Flags().StringVar(&topPath, "top", "", "Summary statistics TSV for the top panel")
	cmd.Flags().StringVar(&bottomPath, "bottom", "", "Summary statistics TSV for the bottom panel")
	cmd.Flags().StringVar(&topAnnot, "top-annot", "", "Gene annotation table for the top panel")
	cmd.Flags().StringVar(&bottomAnnot, "bottom-annot", "", "Gene annotation table for the bottom panel")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory to write miami_plot.png into")
	cmd.Flags().StringVar(&title, "title", "Miami Plot", "Plot title")
	cmd.MarkFlagRequired("top")
	cmd.MarkFlagRequired("bottom")

	return cmd
}
