package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/statgen/gwasplot/internal/layout"
)

const (
	marginLeft   = 70.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 50.0
)

// Manhattan draws a Manhattan plot and saves it to path.
func (r *Renderer) Manhattan(l *layout.Layout, highlights []layout.Highlight, opts Options, path string) error {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f := &frame{
		px0: marginLeft, py0: marginTop,
		px1: float64(opts.Width) - marginRight, py1: float64(opts.Height) - marginBottom,
		xmin: 0, xmax: math.Max(l.XMax(), 1),
		ymin: 0, ymax: math.Max(l.YMax(), 1),
	}

	r.drawManhattanPanel(dc, f, l, highlights, opts)
	r.drawManhattanAxes(dc, f, l)

	if opts.Title != "" {
		dc.SetHexColor(axisColor)
		dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, marginTop/2, 0.5, 0.5)
	}

	r.logger.Info("saving manhattan plot",
		zap.String("path", path),
		zap.Int("points", len(l.Points)),
		zap.Int("highlights", len(highlights)))

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save manhattan plot: %w", err)
	}
	return nil
}

// drawManhattanPanel draws the scatter, significance line and highlights
// into one frame. Miami reuses it for both panels.
func (r *Renderer) drawManhattanPanel(dc *gg.Context, f *frame, l *layout.Layout, highlights []layout.Highlight, opts Options) {
	// Dashed grid at the y ticks.
	step := yTickStep(f.ymax)
	dc.SetHexColor(gridColor)
	dc.SetLineWidth(0.5)
	dc.SetDash(2, 4)
	for y := step; y <= f.ymax; y += step {
		dc.DrawLine(f.px0, f.y(y), f.px1, f.y(y))
	}
	dc.Stroke()
	dc.SetDash()

	// One scatter pass per chromosome group, alternating palette slots.
	for _, g := range l.Groups {
		dc.SetHexColor(chromColors[g.Color])
		for _, p := range g.Points {
			dc.DrawCircle(f.x(float64(p.Index)), f.y(p.Log10P), opts.PointRadius)
		}
		dc.Fill()
	}

	if opts.SigThreshold > 0 {
		drawHLine(dc, f, -math.Log10(opts.SigThreshold), sigLineColor, true)
	}

	// Highlighted variants on top, larger and red.
	dc.SetHexColor(highlightColor)
	for _, h := range highlights {
		dc.DrawCircle(f.x(float64(h.Point.Index)), f.y(h.Point.Log10P), opts.PointRadius*2)
	}
	dc.Fill()

	r.drawGeneLabels(dc, f, highlights)

	drawFrame(dc, f)
}

// drawGeneLabels hands highlight labels to the text-layout collaborator and
// draws the placed boxes with connectors back to their points.
func (r *Renderer) drawGeneLabels(dc *gg.Context, f *frame, highlights []layout.Highlight) {
	if len(highlights) == 0 {
		return
	}

	labels := make([]Label, 0, len(highlights))
	for _, h := range highlights {
		if h.Gene == "" {
			continue
		}
		labels = append(labels, Label{
			X:    f.x(float64(h.Point.Index)),
			Y:    f.y(h.Point.Log10P),
			Text: h.Gene,
		})
	}
	if len(labels) == 0 {
		return
	}

	// Uniform box big enough for the longest gene name.
	var boxW float64
	for _, l := range labels {
		w, _ := dc.MeasureString(l.Text)
		boxW = math.Max(boxW, w+6)
	}
	boxH := 16.0

	for _, p := range r.placer.Place(labels, boxW, boxH) {
		dc.SetHexColor(axisColor)
		dc.SetLineWidth(0.5)
		dc.DrawLine(p.X, p.Y, p.BoxX+p.BoxW/2, p.BoxY+p.BoxH)
		dc.Stroke()

		dc.SetRGB(1, 1, 1)
		dc.DrawRectangle(p.BoxX, p.BoxY, p.BoxW, p.BoxH)
		dc.FillPreserve()
		dc.SetHexColor(axisColor)
		dc.Stroke()

		dc.DrawStringAnchored(p.Text, p.BoxX+p.BoxW/2, p.BoxY+p.BoxH/2, 0.5, 0.4)
	}
}

// drawManhattanAxes draws chromosome tick labels beneath the frame and
// -log10(p) ticks on the left.
func (r *Renderer) drawManhattanAxes(dc *gg.Context, f *frame, l *layout.Layout) {
	dc.SetHexColor(axisColor)

	for _, g := range l.Groups {
		dc.DrawStringAnchored(g.Chrom, f.x(g.Tick), f.py1+14, 0.5, 0.5)
	}
	dc.DrawStringAnchored("Chromosome", (f.px0+f.px1)/2, f.py1+32, 0.5, 0.5)

	step := yTickStep(f.ymax)
	for y := 0.0; y <= f.ymax; y += step {
		dc.DrawStringAnchored(fmt.Sprintf("%g", y), f.px0-8, f.y(y), 1, 0.5)
	}
	dc.Push()
	dc.RotateAbout(-math.Pi/2, marginLeft/3, (f.py0+f.py1)/2)
	dc.DrawStringAnchored("-log10(P-value)", marginLeft/3, (f.py0+f.py1)/2, 0.5, 0.5)
	dc.Pop()
}
