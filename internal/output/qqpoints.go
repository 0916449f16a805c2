package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/statgen/gwasplot/internal/qq"
)

// QQWriter writes QQ quantile pairs and the confidence band in
// tab-delimited format.
type QQWriter struct {
	w *bufio.Writer
}

// NewQQWriter creates a tab-delimited writer for QQ plot data.
func NewQQWriter(w io.Writer) *QQWriter {
	return &QQWriter{w: bufio.NewWriter(w)}
}

// WriteResult writes the axis range and the thinned quantile pairs.
func (qw *QQWriter) WriteResult(res *qq.Result) error {
	if _, err := fmt.Fprintf(qw.w, "# axis\t%g\t%g\n", res.AxisMin, res.AxisMax); err != nil {
		return err
	}
	if _, err := qw.w.WriteString("#expected\tobserved\n"); err != nil {
		return err
	}
	for _, p := range res.Points {
		if _, err := fmt.Fprintf(qw.w, "%.3f\t%.3f\n", p.Expected, p.Observed); err != nil {
			return err
		}
	}
	return nil
}

// WriteBand writes the confidence band as (x, lower, upper) triples.
func (qw *QQWriter) WriteBand(b *qq.Band) error {
	if _, err := fmt.Fprintf(qw.w, "# band\talpha=%g\tn=%d\n", b.Alpha, b.N); err != nil {
		return err
	}
	for _, p := range b.Points {
		if _, err := fmt.Fprintf(qw.w, "%.6g\t%.6g\t%.6g\n", p.X, p.Lower, p.Upper); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (qw *QQWriter) Flush() error {
	return qw.w.Flush()
}
