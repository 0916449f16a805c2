package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/statgen/gwasplot/internal/layout"
)

// Miami draws a Miami plot: the top panel is a normal Manhattan panel, the
// bottom panel the same data transform with the y-axis flipped at render
// time. The panels share x-axis pixel bounds so chromosomes align.
func (r *Renderer) Miami(m *layout.Miami, opts Options, path string) error {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	midGap := 24.0
	panelH := (float64(opts.Height) - marginTop - marginBottom - midGap) / 2

	top := &frame{
		px0: marginLeft, py0: marginTop,
		px1: float64(opts.Width) - marginRight, py1: marginTop + panelH,
		xmin: 0, xmax: math.Max(m.Top.XMax(), 1),
		ymin: 0, ymax: math.Max(m.Top.YMax(), 1),
	}
	bottom := &frame{
		px0: marginLeft, py0: marginTop + panelH + midGap,
		px1: float64(opts.Width) - marginRight, py1: float64(opts.Height) - marginBottom,
		xmin: 0, xmax: math.Max(m.Bottom.XMax(), 1),
		ymin: 0, ymax: math.Max(m.Bottom.YMax(), 1),
		flipY: true,
	}

	r.drawManhattanPanel(dc, top, m.Top, m.TopHighlights, opts)
	r.drawManhattanPanel(dc, bottom, m.Bottom, m.BottomHighlights, opts)

	// Chromosome labels in the gap between panels, from the top layout.
	dc.SetHexColor(axisColor)
	for _, g := range m.Top.Groups {
		dc.DrawStringAnchored(g.Chrom, top.x(g.Tick), top.py1+midGap/2, 0.5, 0.5)
	}

	for _, f := range []*frame{top, bottom} {
		step := yTickStep(f.ymax)
		for y := 0.0; y <= f.ymax; y += step {
			dc.DrawStringAnchored(fmt.Sprintf("%g", y), f.px0-8, f.y(y), 1, 0.5)
		}
	}

	if opts.Title != "" {
		dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, marginTop/2, 0.5, 0.5)
	}

	r.logger.Info("saving miami plot",
		zap.String("path", path),
		zap.Int("top_points", len(m.Top.Points)),
		zap.Int("bottom_points", len(m.Bottom.Points)))

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save miami plot: %w", err)
	}
	return nil
}
