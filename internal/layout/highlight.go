package layout

import "github.com/statgen/gwasplot/internal/gwas"

// Highlight is a variant of interest resolved against a layout, carrying the
// gene name to label it with.
type Highlight struct {
	SNP   string
	Point Point
	Gene  string
}

// ResolveHighlights subsets a layout to the variants named in the annotation
// table. Annotation rows whose variant is absent from the layout are dropped
// silently; the plot degrades to fewer highlights rather than failing. When
// the table names the same variant twice, the last row's gene name wins.
// Results are ordered by linear index, so output is deterministic.
func ResolveHighlights(l *Layout, annotations []gwas.Annotation) []Highlight {
	if l == nil || len(annotations) == 0 {
		return nil
	}

	genes := make(map[string]string, len(annotations))
	for _, a := range annotations {
		genes[a.SNP] = a.Gene
	}

	var highlights []Highlight
	for _, p := range l.Points {
		gene, ok := genes[p.SNP]
		if !ok {
			continue
		}
		highlights = append(highlights, Highlight{
			SNP:   p.SNP,
			Point: p,
			Gene:  gene,
		})
	}

	return highlights
}
