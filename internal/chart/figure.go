// Package chart composes the three kinematic series into a single figure.
package chart

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/kinograph/internal/kinematics"
)

const dpi = 96

// Figure is the data behind the mosaic: one series per panel, all sharing
// Axis.
type Figure struct {
	Axis   kinematics.TimeAxis
	Series []kinematics.Series
	Panels []Panel
}

// NewFigure pairs each PlotSpec panel with its series. Series are indexed by
// column and must match the axis length.
func NewFigure(axis kinematics.TimeAxis, series []kinematics.Series) (*Figure, error) {
	panels := PlotSpec()
	if len(series) != len(panels) {
		return nil, fmt.Errorf("chart: got %d series, want %d", len(series), len(panels))
	}
	for i, s := range series {
		if len(s) != len(axis) {
			return nil, fmt.Errorf("chart: series %d has %d values, time axis has %d", i, len(s), len(axis))
		}
	}
	return &Figure{Axis: axis, Series: series, Panels: panels}, nil
}

// SeriesFor returns the series plotted in p.
func (f *Figure) SeriesFor(p Panel) kinematics.Series {
	return f.Series[p.Column]
}

// Plots builds one gonum plot per panel, in panel order.
func (f *Figure) Plots() ([]*plot.Plot, error) {
	plots := make([]*plot.Plot, len(f.Panels))
	for i, panel := range f.Panels {
		p := plot.New()
		p.X.Label.Text = XLabel
		p.Y.Label.Text = panel.YLabel
		p.Add(plotter.NewGrid())

		series := f.SeriesFor(panel)
		pts := make(plotter.XYs, len(series))
		for j := range series {
			pts[j].X = f.Axis[j]
			pts[j].Y = series[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", panel.Index, err)
		}
		line.LineStyle.Color = panel.Color
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)

		plots[i] = p
	}
	return plots, nil
}

// Render draws the mosaic onto a widthPx by heightPx image.
func (f *Figure) Render(widthPx, heightPx int) (image.Image, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("chart: invalid size %dx%d", widthPx, heightPx)
	}

	layout, err := Layout(Mosaic())
	if err != nil {
		return nil, err
	}
	plots, err := f.Plots()
	if err != nil {
		return nil, err
	}

	w := vg.Length(widthPx) * vg.Inch / dpi
	h := vg.Length(heightPx) * vg.Inch / dpi
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	dc := draw.New(c)

	for i, panel := range f.Panels {
		rect, ok := layout[panel.Index]
		if !ok {
			return nil, fmt.Errorf("chart: panel %d missing from layout", panel.Index)
		}
		plots[i].Draw(subCanvas(dc, rect))
	}

	return c.Image(), nil
}

// subCanvas maps a top-left unit rect onto dc, whose origin is bottom-left.
func subCanvas(dc draw.Canvas, r Rect) draw.Canvas {
	size := dc.Max.Sub(dc.Min)
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{
				X: dc.Min.X + vg.Length(r.MinX)*size.X,
				Y: dc.Max.Y - vg.Length(r.MaxY)*size.Y,
			},
			Max: vg.Point{
				X: dc.Min.X + vg.Length(r.MaxX)*size.X,
				Y: dc.Max.Y - vg.Length(r.MinY)*size.Y,
			},
		},
	}
}
