package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statgen/gwasplot/internal/gwas"
)

func testLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := Compute([]gwas.Record{
		{Chrom: "1", SNP: "rs001", P: 0.5},
		{Chrom: "1", SNP: "rs002", P: 0.01},
		{Chrom: "2", SNP: "rs003", P: 1e-9},
	})
	require.NoError(t, err)
	return l
}

func TestResolveHighlights(t *testing.T) {
	l := testLayout(t)

	hl := ResolveHighlights(l, []gwas.Annotation{
		{SNP: "rs003", Gene: "LRRK2"},
		{SNP: "rs001", Gene: "APOE"},
	})

	require.Len(t, hl, 2)
	// Ordered by linear index regardless of annotation-table order.
	assert.Equal(t, "rs001", hl[0].SNP)
	assert.Equal(t, "APOE", hl[0].Gene)
	assert.Equal(t, 0, hl[0].Point.Index)
	assert.Equal(t, "rs003", hl[1].SNP)
	assert.Equal(t, "LRRK2", hl[1].Gene)
}

func TestResolveHighlights_MissingVariantDropped(t *testing.T) {
	l := testLayout(t)

	hl := ResolveHighlights(l, []gwas.Annotation{
		{SNP: "rs002", Gene: "SNCA"},
		{SNP: "rs999", Gene: "GBA"}, // not in the data
	})

	require.Len(t, hl, 1)
	assert.Equal(t, "rs002", hl[0].SNP)
}

func TestResolveHighlights_DuplicateLastWins(t *testing.T) {
	l := testLayout(t)

	hl := ResolveHighlights(l, []gwas.Annotation{
		{SNP: "rs001", Gene: "APOE"},
		{SNP: "rs001", Gene: "TOMM40"},
	})

	require.Len(t, hl, 1)
	assert.Equal(t, "TOMM40", hl[0].Gene)
}

func TestResolveHighlights_Empty(t *testing.T) {
	l := testLayout(t)
	assert.Nil(t, ResolveHighlights(l, nil))
	assert.Nil(t, ResolveHighlights(nil, []gwas.Annotation{{SNP: "rs001", Gene: "APOE"}}))
}
