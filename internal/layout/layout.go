// Package layout maps GWAS records onto plot-ready coordinates: a shared
// linear x-axis across chromosomes for Manhattan and Miami plots.
package layout

import (
	"math"
	"sort"

	"github.com/statgen/gwasplot/internal/gwas"
)

// PaletteSize is the number of alternating chromosome colors. Groups cycle
// through palette slots by ordinal.
const PaletteSize = 2

// Point is a single variant placed on the linear axis.
type Point struct {
	Index  int     // 0-based position on the shared x-axis
	Log10P float64 // -log10(p)
	SNP    string
	Chrom  string
}

// Group is one chromosome's worth of points.
type Group struct {
	Chrom  string
	Points []Point // subslice of Layout.Points, consecutive by construction
	Tick   float64 // x-axis label position, midpoint of first and last index
	Color  int     // palette slot, ordinal mod PaletteSize
}

// Layout is the full result of placing one result table on the linear axis.
type Layout struct {
	Points    []Point
	Groups    []Group
	MaxLog10P float64
}

// Empty reports whether the layout contains no points.
func (l *Layout) Empty() bool {
	return len(l.Points) == 0
}

// XMax returns the upper x-axis limit, one past the last index.
func (l *Layout) XMax() float64 {
	return float64(len(l.Points))
}

// YMax returns the upper y-axis limit, one above the strongest association.
func (l *Layout) YMax() float64 {
	return l.MaxLog10P + 1
}

// Compute places records on the linear axis. Records are stable-sorted by
// chromosome (numeric labels numerically), indexed in sorted order, and
// grouped consecutively per chromosome. The result is independent of the
// input's initial ordering up to the stable tie-break within a chromosome.
// An empty input yields an empty layout, not an error.
func Compute(records []gwas.Record) (*Layout, error) {
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]gwas.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return gwas.CompareChrom(sorted[i].Chrom, sorted[j].Chrom) < 0
	})

	l := &Layout{Points: make([]Point, len(sorted))}
	for i, r := range sorted {
		lp := -math.Log10(r.P)
		if lp == 0 {
			lp = 0 // -log10(1) is IEEE -0
		}
		l.Points[i] = Point{
			Index:  i,
			Log10P: lp,
			SNP:    r.SNP,
			Chrom:  r.Chrom,
		}
		if lp > l.MaxLog10P {
			l.MaxLog10P = lp
		}
	}

	// Consecutive grouping is safe because the sort above is stable and
	// keyed only on chromosome.
	for start := 0; start < len(l.Points); {
		end := start + 1
		for end < len(l.Points) && l.Points[end].Chrom == l.Points[start].Chrom {
			end++
		}

		ordinal := len(l.Groups)
		l.Groups = append(l.Groups, Group{
			Chrom:  l.Points[start].Chrom,
			Points: l.Points[start:end],
			Tick:   float64(start+end-1) / 2,
			Color:  ordinal % PaletteSize,
		})
		start = end
	}

	return l, nil
}
