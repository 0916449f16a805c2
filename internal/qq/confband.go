package qq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statgen/gwasplot/internal/gwas"
)

// Defaults for the confidence band.
const (
	DefaultBandPoints = 1500
	DefaultAlpha      = 0.05
)

// BandPoint is the pointwise confidence interval at one expected quantile.
// Lower and Upper are on -log10 scale, so Upper >= Lower.
type BandPoint struct {
	X     float64
	Lower float64
	Upper float64
}

// Band is the (1-alpha) pointwise confidence envelope for the expected
// quantiles of n uniform p-values.
type Band struct {
	Points []BandPoint
	Alpha  float64
	N      int
}

// Vertex is one corner of the band's filled polygon.
type Vertex struct {
	X float64
	Y float64
}

// Polygon returns the closed polygon boundary: the upper branch walked
// left-to-right, then the lower branch walked right-to-left. The vertex
// count is twice the band's point count.
func (b *Band) Polygon() []Vertex {
	n := len(b.Points)
	verts := make([]Vertex, 2*n)
	for i, p := range b.Points {
		verts[i] = Vertex{X: p.X, Y: p.Upper}
		verts[2*n-1-i] = Vertex{X: p.X, Y: p.Lower}
	}
	return verts
}

// ConfidenceBand computes the pointwise confidence envelope for a QQ plot of
// n p-values. Under the null, the i-th smallest of n uniform draws follows
// Beta(i, n-i); the band bounds are that distribution's alpha/2 and
// 1-alpha/2 quantiles transformed to -log10 scale.
//
// points is the band resolution budget and is clamped to n-1 so the second
// beta shape parameter n-i stays >= 1; asking for more points than the
// sample supports is recovered by clamping, not an error.
func ConfidenceBand(n, points int, alpha float64) (*Band, error) {
	if n <= 0 {
		return nil, fmt.Errorf("confidence band: sample size %d: %w", n, gwas.ErrEmptySeries)
	}
	if points <= 0 {
		points = DefaultBandPoints
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("confidence band: alpha %g outside (0, 1)", alpha)
	}

	if points > n-1 {
		points = n - 1
	}

	b := &Band{
		Points: make([]BandPoint, points),
		Alpha:  alpha,
		N:      n,
	}

	for i := 1; i <= points; i++ {
		beta := distuv.Beta{Alpha: float64(i), Beta: float64(n - i)}
		b.Points[i-1] = BandPoint{
			X:     -math.Log10((float64(i) - 0.5) / float64(n)),
			Lower: -math.Log10(beta.Quantile(1 - alpha/2)),
			Upper: -math.Log10(beta.Quantile(alpha / 2)),
		}
	}

	return b, nil
}
