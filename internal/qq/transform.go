// Package qq implements the QQ plot transform: observed vs. expected
// -log10 p-value quantiles plus the order-statistic confidence band.
package qq

import (
	"fmt"
	"math"
	"sort"

	"github.com/statgen/gwasplot/internal/gwas"
)

// Point is one (expected, observed) quantile pair, both on -log10 scale and
// rounded to 3 decimals.
type Point struct {
	Expected float64
	Observed float64
}

// Result is the thinned QQ scatter plus the shared axis range. The range is
// used for both axes so the y=x reference line is a true diagonal.
type Result struct {
	Points  []Point
	AxisMin float64
	AxisMax float64
	N       int // original sample size, before thinning
}

// round3 collapses visually indistinguishable points; rounding both series
// before deduplication is the thinning mechanism.
func round3(x float64) float64 {
	v := math.Round(x*1000) / 1000
	if v == 0 {
		return 0 // -log10(1) is IEEE -0; normalize so it prints and hashes as +0
	}
	return v
}

// Transform converts a p-value series into matched quantile pairs.
//
// Expected quantiles use ordinal ranks: the 1-based rank of each p-value in
// ascending order, ties broken by original position (first seen gets the
// lower rank). expected = -log10((rank-0.5)/n), observed = -log10(p). Exact
// duplicate pairs after rounding are removed, keeping first-occurrence order.
func Transform(pvalues []float64) (*Result, error) {
	n := len(pvalues)
	if n == 0 {
		return nil, gwas.ErrEmptySeries
	}
	for i, p := range pvalues {
		if p <= 0 || p > 1 {
			return nil, fmt.Errorf("%w: p[%d]=%g", gwas.ErrInvalidPValue, i, p)
		}
	}

	// Ordinal ranks via a stable argsort on p-value.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pvalues[order[a]] < pvalues[order[b]]
	})
	rank := make([]int, n)
	for k, idx := range order {
		rank[idx] = k + 1
	}

	res := &Result{
		Points: make([]Point, 0, n),
		N:      n,
	}

	seen := make(map[Point]struct{}, n)
	first := true
	for i, p := range pvalues {
		pt := Point{
			Expected: round3(-math.Log10((float64(rank[i]) - 0.5) / float64(n))),
			Observed: round3(-math.Log10(p)),
		}

		if first {
			res.AxisMin = math.Min(pt.Expected, pt.Observed)
			res.AxisMax = math.Max(pt.Expected, pt.Observed)
			first = false
		} else {
			res.AxisMin = math.Min(res.AxisMin, math.Min(pt.Expected, pt.Observed))
			res.AxisMax = math.Max(res.AxisMax, math.Max(pt.Expected, pt.Observed))
		}

		if _, dup := seen[pt]; dup {
			continue
		}
		seen[pt] = struct{}{}
		res.Points = append(res.Points, pt)
	}

	res.AxisMin -= 0.5
	res.AxisMax += 1

	return res, nil
}
