// Package output writes plot-ready coordinate series as tab-delimited text,
// for inspection or for feeding external plotting tools.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/statgen/gwasplot/internal/layout"
)

// LayoutWriter writes Manhattan layout points in tab-delimited format.
type LayoutWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewLayoutWriter creates a tab-delimited writer for layout points.
func NewLayoutWriter(w io.Writer) *LayoutWriter {
	return &LayoutWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#index",
			"log10p",
			"chrom",
			"snp",
			"color",
		},
	}
}

// WriteHeader writes the header line.
func (lw *LayoutWriter) WriteHeader() error {
	_, err := lw.w.WriteString(strings.Join(lw.columns, "\t") + "\n")
	return err
}

// WriteLayout writes every point, group by group so the color column is the
// group's palette slot.
func (lw *LayoutWriter) WriteLayout(l *layout.Layout) error {
	for _, g := range l.Groups {
		for _, p := range g.Points {
			_, err := fmt.Fprintf(lw.w, "%d\t%.6g\t%s\t%s\t%d\n",
				p.Index, p.Log10P, p.Chrom, p.SNP, g.Color)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTicks appends the chromosome tick labels as comment lines.
func (lw *LayoutWriter) WriteTicks(l *layout.Layout) error {
	for _, g := range l.Groups {
		if _, err := fmt.Fprintf(lw.w, "# tick\t%s\t%g\n", g.Chrom, g.Tick); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (lw *LayoutWriter) Flush() error {
	return lw.w.Flush()
}
