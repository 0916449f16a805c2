package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statgen/gwasplot/internal/duckdb"
	"github.com/statgen/gwasplot/internal/gwas"
)

func newImportCmd() *cobra.Command {
	var (
		in    string
		db    string
		study string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import summary statistics into a DuckDB store",
		Long:  "Parse a summary statistics TSV and store it under a study name for repeated plotting.",
		Example: `  gwasplot import --in gwas.tsv --db stats.duckdb --study discovery
  gwasplot manhattan --db stats.duckdb --study discovery --out-dir plots/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gwas.NewParser(in)
			if err != nil {
				return err
			}
			defer p.Close()

			records, err := p.ReadAll()
			if err != nil {
				return err
			}

			s, err := duckdb.Open(db)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.WriteRecords(study, records); err != nil {
				return err
			}

			fmt.Printf("Imported %d records into %s as study %q\n", len(records), db, study)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Summary statistics TSV ('-' for stdin)")
	cmd.Flags().StringVar(&db, "db", "", "DuckDB store path (created if missing)")
	cmd.Flags().StringVar(&study, "study", "", "Study name to store the records under")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("db")
	cmd.MarkFlagRequired("study")

	return cmd
}
