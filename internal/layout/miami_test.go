package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statgen/gwasplot/internal/gwas"
)

func TestComposeMiami(t *testing.T) {
	top := []gwas.Record{
		{Chrom: "2", SNP: "t1", P: 0.01},
		{Chrom: "1", SNP: "t2", P: 0.5},
	}
	bottom := []gwas.Record{
		{Chrom: "1", SNP: "b1", P: 0.001},
		{Chrom: "1", SNP: "b2", P: 0.2},
		{Chrom: "2", SNP: "b3", P: 0.05},
	}

	m, err := ComposeMiami(top, bottom, []gwas.Annotation{{SNP: "t1", Gene: "APOE"}}, nil)
	require.NoError(t, err)

	require.Len(t, m.Top.Points, 2)
	require.Len(t, m.Bottom.Points, 3)

	// Each panel is laid out independently, as if computed alone.
	solo, err := Compute(bottom)
	require.NoError(t, err)
	assert.Equal(t, solo, m.Bottom)

	// Bottom y-values keep their sign; mirroring happens at render time.
	for _, p := range m.Bottom.Points {
		assert.GreaterOrEqual(t, p.Log10P, 0.0)
	}

	require.Len(t, m.TopHighlights, 1)
	assert.Equal(t, "t1", m.TopHighlights[0].SNP)
	assert.Empty(t, m.BottomHighlights)
}

func TestComposeMiami_PanelErrorsPropagate(t *testing.T) {
	good := []gwas.Record{{Chrom: "1", SNP: "a", P: 0.5}}
	bad := []gwas.Record{{Chrom: "1", SNP: "b", P: 0}}

	_, err := ComposeMiami(good, bad, nil, nil)
	require.ErrorIs(t, err, gwas.ErrInvalidPValue)

	_, err = ComposeMiami(bad, good, nil, nil)
	require.ErrorIs(t, err, gwas.ErrInvalidPValue)
}

func TestComposeMiami_EmptyPanels(t *testing.T) {
	m, err := ComposeMiami(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, m.Top.Empty())
	assert.True(t, m.Bottom.Empty())
}
