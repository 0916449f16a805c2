package qq

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statgen/gwasplot/internal/gwas"
)

func TestTransform_OrdinalRanks(t *testing.T) {
	// p-values [0.5, 0.25, 0.1, 0.05, 0.01]: ranks by ascending value are
	// [5, 4, 3, 2, 1], so expected_i = -log10((rank_i-0.5)/5).
	pvalues := []float64{0.5, 0.25, 0.1, 0.05, 0.01}
	ranks := []float64{5, 4, 3, 2, 1}

	res, err := Transform(pvalues)
	require.NoError(t, err)
	require.Len(t, res.Points, 5)
	assert.Equal(t, 5, res.N)

	for i, pt := range res.Points {
		wantExp := math.Round(-math.Log10((ranks[i]-0.5)/5)*1000) / 1000
		wantObs := math.Round(-math.Log10(pvalues[i])*1000) / 1000
		assert.Equal(t, wantExp, pt.Expected, "expected[%d]", i)
		assert.Equal(t, wantObs, pt.Observed, "observed[%d]", i)
	}
}

func TestTransform_TiesStableFirstSeenWins(t *testing.T) {
	// Equal p-values keep their arrival order: the first occurrence gets
	// the lower rank and therefore the larger expected quantile.
	res, err := Transform([]float64{0.2, 0.2, 0.5})
	require.NoError(t, err)

	require.Len(t, res.Points, 3)
	n := 3.0
	assert.Equal(t, round3(-math.Log10(0.5/n)), res.Points[0].Expected)
	assert.Equal(t, round3(-math.Log10(1.5/n)), res.Points[1].Expected)
	assert.Equal(t, round3(-math.Log10(2.5/n)), res.Points[2].Expected)
}

func TestTransform_ExpectedMonotoneInRank(t *testing.T) {
	pvalues := []float64{0.9, 0.03, 0.5, 0.11, 0.2, 0.0004, 0.07, 0.65}
	res, err := Transform(pvalues)
	require.NoError(t, err)

	// Sorting pairs by expected value must also sort observed descending:
	// higher expected quantile means smaller p.
	pts := make([]Point, len(res.Points))
	copy(pts, res.Points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Expected < pts[j].Expected })
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i-1].Expected, pts[i].Expected)
		assert.LessOrEqual(t, pts[i-1].Observed, pts[i].Observed)
	}

	// The largest expected value corresponds to rank 1.
	n := float64(len(pvalues))
	assert.Equal(t, round3(-math.Log10(0.5/n)), pts[len(pts)-1].Expected)
}

func TestTransform_DeduplicatesRoundedPairs(t *testing.T) {
	// A geometric grid keeps every observed value distinct after rounding
	// (-log10 spacing of 3/n > 0.001). Duplicating the largest p-value
	// puts the copies at the two highest ranks, where the expected values
	// also round to the same 3 decimals, so exactly one pair collapses.
	n := 2000
	pvalues := make([]float64, n)
	for i := range pvalues {
		pvalues[i] = math.Pow(10, -3*float64(i+1)/float64(n))
	}
	pvalues[1] = pvalues[0]

	res, err := Transform(pvalues)
	require.NoError(t, err)
	assert.Len(t, res.Points, n-1, "one duplicate pair collapses to a single point")
}

func TestTransform_AxisRange(t *testing.T) {
	res, err := Transform([]float64{0.5, 0.25, 0.1, 0.05, 0.01})
	require.NoError(t, err)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range res.Points {
		lo = math.Min(lo, math.Min(pt.Expected, pt.Observed))
		hi = math.Max(hi, math.Max(pt.Expected, pt.Observed))
	}
	assert.InDelta(t, lo-0.5, res.AxisMin, 1e-12)
	assert.InDelta(t, hi+1, res.AxisMax, 1e-12)
}

func TestTransform_RejectsZeroP(t *testing.T) {
	_, err := Transform([]float64{0.5, 0, 0.1})
	require.ErrorIs(t, err, gwas.ErrInvalidPValue)
}

func TestTransform_RejectsPAboveOne(t *testing.T) {
	_, err := Transform([]float64{0.5, 1.01})
	require.ErrorIs(t, err, gwas.ErrInvalidPValue)
}

func TestTransform_AcceptsPEqualOne(t *testing.T) {
	res, err := Transform([]float64{1.0, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Points[0].Observed)
}

func TestTransform_EmptySeries(t *testing.T) {
	_, err := Transform(nil)
	require.ErrorIs(t, err, gwas.ErrEmptySeries)
}

func TestTransform_SingleValue(t *testing.T) {
	res, err := Transform([]float64{0.05})
	require.NoError(t, err)
	require.Len(t, res.Points, 1)
	assert.Equal(t, round3(-math.Log10(0.5/1)), res.Points[0].Expected)
}

func TestTransform_Deterministic(t *testing.T) {
	pvalues := []float64{0.9, 0.03, 0.5, 0.03, 0.2}
	r1, err := Transform(pvalues)
	require.NoError(t, err)
	r2, err := Transform(pvalues)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
