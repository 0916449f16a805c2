package layout

import (
	"sync"

	"github.com/statgen/gwasplot/internal/gwas"
)

// Miami holds the two panels of a Miami plot. Both panels use identical
// coordinate transforms; mirroring the bottom panel is a rendering-time
// y-axis flip, not a data transform, so the panels stay independently
// reusable.
type Miami struct {
	Top    *Layout
	Bottom *Layout

	TopHighlights    []Highlight
	BottomHighlights []Highlight
}

// ComposeMiami lays out the two result tables and resolves each panel's
// highlights. The panels share no state, so they are computed concurrently.
func ComposeMiami(top, bottom []gwas.Record, topAnns, bottomAnns []gwas.Annotation) (*Miami, error) {
	m := &Miami{}
	var topErr, bottomErr error

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		m.Top, topErr = Compute(top)
		if topErr == nil {
			m.TopHighlights = ResolveHighlights(m.Top, topAnns)
		}
	}()

	go func() {
		defer wg.Done()
		m.Bottom, bottomErr = Compute(bottom)
		if bottomErr == nil {
			m.BottomHighlights = ResolveHighlights(m.Bottom, bottomAnns)
		}
	}()

	wg.Wait()

	if topErr != nil {
		return nil, topErr
	}
	if bottomErr != nil {
		return nil, bottomErr
	}

	return m, nil
}
