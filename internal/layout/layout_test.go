package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statgen/gwasplot/internal/gwas"
)

func TestCompute_SortsAndTicks(t *testing.T) {
	// Chromosomes arrive interleaved; the layout must place chromosome 1
	// first (indices 0,1) then chromosome 2 (indices 2,3), with tick
	// positions at the group midpoints.
	records := []gwas.Record{
		{Chrom: "2", SNP: "rs1", P: 0.01},
		{Chrom: "1", SNP: "rs2", P: 0.5},
		{Chrom: "1", SNP: "rs3", P: 0.2},
		{Chrom: "2", SNP: "rs4", P: 0.001},
	}

	l, err := Compute(records)
	require.NoError(t, err)

	require.Len(t, l.Points, 4)
	assert.Equal(t, "rs2", l.Points[0].SNP)
	assert.Equal(t, "rs3", l.Points[1].SNP)
	assert.Equal(t, "rs1", l.Points[2].SNP)
	assert.Equal(t, "rs4", l.Points[3].SNP)

	for i, p := range l.Points {
		assert.Equal(t, i, p.Index)
	}

	require.Len(t, l.Groups, 2)
	assert.Equal(t, "1", l.Groups[0].Chrom)
	assert.Equal(t, 0.5, l.Groups[0].Tick)
	assert.Equal(t, "2", l.Groups[1].Chrom)
	assert.Equal(t, 2.5, l.Groups[1].Tick)
}

func TestCompute_NumericChromOrder(t *testing.T) {
	records := []gwas.Record{
		{Chrom: "10", SNP: "a", P: 0.1},
		{Chrom: "2", SNP: "b", P: 0.1},
		{Chrom: "1", SNP: "c", P: 0.1},
		{Chrom: "X", SNP: "d", P: 0.1},
		{Chrom: "20", SNP: "e", P: 0.1},
	}

	l, err := Compute(records)
	require.NoError(t, err)

	var order []string
	for _, g := range l.Groups {
		order = append(order, g.Chrom)
	}
	assert.Equal(t, []string{"1", "2", "10", "20", "X"}, order)
}

func TestCompute_AlternatingColors(t *testing.T) {
	records := []gwas.Record{
		{Chrom: "1", SNP: "a", P: 0.1},
		{Chrom: "2", SNP: "b", P: 0.1},
		{Chrom: "3", SNP: "c", P: 0.1},
		{Chrom: "4", SNP: "d", P: 0.1},
	}

	l, err := Compute(records)
	require.NoError(t, err)

	require.Len(t, l.Groups, 4)
	for i, g := range l.Groups {
		assert.Equal(t, i%PaletteSize, g.Color)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	// Same multiset of records in a different arrival order yields
	// identical assignments.
	a := []gwas.Record{
		{Chrom: "2", SNP: "rs1", P: 0.01},
		{Chrom: "1", SNP: "rs2", P: 0.5},
		{Chrom: "3", SNP: "rs3", P: 0.2},
	}

	l1, err := Compute(a)
	require.NoError(t, err)
	l2, err := Compute(a)
	require.NoError(t, err)
	assert.Equal(t, l1, l2)
}

func TestCompute_Empty(t *testing.T) {
	l, err := Compute(nil)
	require.NoError(t, err)
	assert.True(t, l.Empty())
	assert.Empty(t, l.Groups)
}

func TestCompute_SinglePointGroup(t *testing.T) {
	// A chromosome with one record still forms a valid group whose tick
	// is the record's own index.
	records := []gwas.Record{
		{Chrom: "1", SNP: "a", P: 0.1},
		{Chrom: "1", SNP: "b", P: 0.2},
		{Chrom: "2", SNP: "c", P: 0.3},
	}

	l, err := Compute(records)
	require.NoError(t, err)

	require.Len(t, l.Groups, 2)
	assert.Equal(t, 2.0, l.Groups[1].Tick)
	assert.Len(t, l.Groups[1].Points, 1)
}

func TestCompute_RejectsInvalidP(t *testing.T) {
	_, err := Compute([]gwas.Record{{Chrom: "1", SNP: "a", P: 0}})
	require.ErrorIs(t, err, gwas.ErrInvalidPValue)

	_, err = Compute([]gwas.Record{{Chrom: "1", SNP: "a", P: 1.2}})
	require.ErrorIs(t, err, gwas.ErrInvalidPValue)
}

func TestCompute_Log10AndLimits(t *testing.T) {
	records := []gwas.Record{
		{Chrom: "1", SNP: "a", P: 0.01},
		{Chrom: "1", SNP: "b", P: 1.0},
	}

	l, err := Compute(records)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, l.Points[0].Log10P, 1e-12)
	assert.Equal(t, 0.0, l.Points[1].Log10P, "p=1 maps to zero")
	assert.InDelta(t, 3.0, l.YMax(), 1e-12)
	assert.Equal(t, 2.0, l.XMax())
}

func TestCompute_TinyPValue(t *testing.T) {
	l, err := Compute([]gwas.Record{{Chrom: "1", SNP: "a", P: 5e-8}})
	require.NoError(t, err)
	assert.InDelta(t, -math.Log10(5e-8), l.Points[0].Log10P, 1e-12)
}
