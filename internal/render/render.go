// Package render draws Manhattan, QQ and Miami plots to PNG files.
//
// The layout and qq packages produce plot-ready coordinates; this package
// is the rendering backend that turns them into images.
package render

import (
	"math"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// Palette colors, indexed by a group's palette slot.
var chromColors = []string{"#808080", "#87CEEB"} // grey, skyblue

const (
	highlightColor = "#FF0000"
	bandColor      = "#D3D3D3"
	sigLineColor   = "#0000FF"
	diagonalColor  = "#FF0000"
	gridColor      = "#C8C8C8"
	axisColor      = "#000000"
)

// GenomeWideSignificance is the conventional genome-wide threshold drawn on
// Manhattan and Miami plots.
const GenomeWideSignificance = 5e-8

// Options controls canvas geometry and plot decorations.
type Options struct {
	Width        int     // canvas width in pixels
	Height       int     // canvas height in pixels
	PointRadius  float64 // scatter marker radius
	SigThreshold float64 // p-value threshold for the significance line; 0 disables it
	Title        string
}

// DefaultOptions returns the default canvas geometry.
func DefaultOptions() Options {
	return Options{
		Width:        1600,
		Height:       800,
		PointRadius:  2,
		SigThreshold: GenomeWideSignificance,
	}
}

// Renderer draws plots. The zero value is not usable; use NewRenderer.
type Renderer struct {
	logger *zap.Logger
	placer LabelPlacer
}

// NewRenderer creates a renderer with a no-op logger and the default label
// placer.
func NewRenderer() *Renderer {
	return &Renderer{
		logger: zap.NewNop(),
		placer: NewGreedyPlacer(),
	}
}

// SetLogger sets the logger for progress and warning messages.
func (r *Renderer) SetLogger(l *zap.Logger) {
	r.logger = l
}

// SetLabelPlacer replaces the text-layout collaborator used for gene labels.
func (r *Renderer) SetLabelPlacer(p LabelPlacer) {
	r.placer = p
}

// frame maps data coordinates onto a pixel rectangle. When flipY is set the
// y-axis grows downward, which is how the bottom Miami panel is mirrored.
type frame struct {
	px0, py0, px1, py1     float64 // pixel rect, py0 = top edge
	xmin, xmax, ymin, ymax float64
	flipY                  bool
}

func (f *frame) x(v float64) float64 {
	return f.px0 + (v-f.xmin)/(f.xmax-f.xmin)*(f.px1-f.px0)
}

func (f *frame) y(v float64) float64 {
	t := (v - f.ymin) / (f.ymax - f.ymin)
	if f.flipY {
		return f.py0 + t*(f.py1-f.py0)
	}
	return f.py1 - t*(f.py1-f.py0)
}

// yTickStep picks a round tick spacing giving at most ~10 ticks.
func yTickStep(ymax float64) float64 {
	if ymax <= 10 {
		return 1
	}
	raw := ymax / 10
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag <= 2:
		return 2 * mag
	case raw/mag <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func drawFrame(dc *gg.Context, f *frame) {
	dc.SetHexColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(f.px0, f.py0, f.px1-f.px0, f.py1-f.py0)
	dc.Stroke()
}

func drawHLine(dc *gg.Context, f *frame, y float64, hex string, dashed bool) {
	py := f.y(y)
	if py < f.py0 || py > f.py1 {
		return
	}
	dc.SetHexColor(hex)
	dc.SetLineWidth(1)
	if dashed {
		dc.SetDash(6, 4)
	}
	dc.DrawLine(f.px0, py, f.px1, py)
	dc.Stroke()
	dc.SetDash()
}
