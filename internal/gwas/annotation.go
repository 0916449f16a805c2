package gwas

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// Annotation is one row of the gene-annotation table: a variant of interest
// and the gene name to label it with.
type Annotation struct {
	SNP  string `csv:"SNP"`
	Gene string `csv:"GENE"`
}

// LoadAnnotations reads a tab-delimited annotation table with SNP and GENE
// columns. Annotation tables are small (tens of rows), so the whole file is
// unmarshaled at once.
func LoadAnnotations(path string) ([]Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation file: %w", err)
	}
	defer f.Close()

	return ReadAnnotations(f)
}

// ReadAnnotations reads the annotation table from an io.Reader. The
// tab-delimited csv.Reader is constructed locally so no package-global
// gocsv state is touched.
func ReadAnnotations(r io.Reader) ([]Annotation, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true

	var annotations []Annotation
	if err := gocsv.UnmarshalCSV(cr, &annotations); err != nil {
		return nil, fmt.Errorf("parse annotation table: %w", err)
	}

	return annotations, nil
}
