package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/statgen/gwasplot/internal/qq"
)

// QQ draws a QQ plot with its confidence band and saves it to path. The
// canvas is square and both axes share the result's axis range so the y=x
// reference line is a true diagonal. band may be nil.
func (r *Renderer) QQ(res *qq.Result, band *qq.Band, opts Options, path string) error {
	side := min(opts.Width, opts.Height)
	dc := gg.NewContext(side, side)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f := &frame{
		px0: marginLeft, py0: marginTop,
		px1: float64(side) - marginRight, py1: float64(side) - marginBottom,
		xmin: res.AxisMin, xmax: res.AxisMax,
		ymin: res.AxisMin, ymax: res.AxisMax,
	}

	// Confidence band first, as a filled polygon beneath everything else.
	if band != nil && len(band.Points) > 0 {
		dc.SetHexColor(bandColor)
		poly := band.Polygon()
		dc.MoveTo(f.x(poly[0].X), f.y(poly[0].Y))
		for _, v := range poly[1:] {
			dc.LineTo(f.x(v.X), f.y(v.Y))
		}
		dc.ClosePath()
		dc.Fill()
	}

	// y = x reference line across the full shared range.
	dc.SetHexColor(diagonalColor)
	dc.SetLineWidth(1)
	dc.SetDash(6, 4)
	dc.DrawLine(f.x(res.AxisMin), f.y(res.AxisMin), f.x(res.AxisMax), f.y(res.AxisMax))
	dc.Stroke()
	dc.SetDash()

	dc.SetHexColor(chromColors[0])
	for _, p := range res.Points {
		dc.DrawCircle(f.x(p.Expected), f.y(p.Observed), opts.PointRadius)
	}
	dc.Fill()

	drawFrame(dc, f)
	r.drawQQAxes(dc, f)

	if opts.Title != "" {
		dc.SetHexColor(axisColor)
		dc.DrawStringAnchored(opts.Title, float64(side)/2, marginTop/2, 0.5, 0.5)
	}

	r.logger.Info("saving qq plot",
		zap.String("path", path),
		zap.Int("points", len(res.Points)),
		zap.Int("n", res.N))

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save qq plot: %w", err)
	}
	return nil
}

func (r *Renderer) drawQQAxes(dc *gg.Context, f *frame) {
	dc.SetHexColor(axisColor)

	step := yTickStep(f.ymax - f.ymin)
	start := float64(int(f.ymin/step)) * step
	if start < f.ymin {
		start += step
	}
	for v := start; v <= f.ymax; v += step {
		dc.DrawStringAnchored(fmt.Sprintf("%g", v), f.px0-8, f.y(v), 1, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%g", v), f.x(v), f.py1+14, 0.5, 0.5)
	}

	dc.DrawStringAnchored("Expected (-log10 p-value)", (f.px0+f.px1)/2, f.py1+32, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, marginLeft/3, (f.py0+f.py1)/2)
	dc.DrawStringAnchored("Observed (-log10 p-value)", marginLeft/3, (f.py0+f.py1)/2, 0.5, 0.5)
	dc.Pop()
}
