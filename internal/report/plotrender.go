package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotRenderer renders charts as PNG files with gonum/plot.
type PlotRenderer struct{}

var _ Renderer = PlotRenderer{}

func (PlotRenderer) RenderBar(path string, points []BarPoint, style BarStyle) error {
	p := plot.New()
	p.Title.Text = style.Title
	p.X.Label.Text = style.XLabel
	p.Y.Label.Text = style.YLabel
	p.X.Min = 0
	p.X.Max = style.XMax

	// No bars is a valid chart: a metric nobody scored still gets its
	// titled, empty image.
	if len(points) > 0 {
		values := make(plotter.Values, len(points))
		names := make([]string, len(points))
		for i, pt := range points {
			values[i] = pt.Value
			names[i] = pt.Label
		}

		bars, err := plotter.NewBarChart(values, vg.Points(18))
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Horizontal = true
		bars.Color = style.Color
		bars.LineStyle.Color = color.Black
		bars.LineStyle.Width = vg.Points(0.5)
		p.Add(bars)
		p.NominalY(names...)
	}

	if style.Annotate != nil && len(points) > 0 {
		offset := 0.015 * style.XMax
		labels := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(points)),
			Labels: make([]string, len(points)),
		}
		for i, pt := range points {
			x := pt.Value + offset
			if x > style.XMax*0.98 {
				x = style.XMax * 0.98
			}
			labels.XYs[i] = plotter.XY{X: x, Y: float64(i)}
			labels.Labels[i] = style.Annotate(pt.Value)
		}
		annotations, err := plotter.NewLabels(labels)
		if err != nil {
			return fmt.Errorf("bar annotations: %w", err)
		}
		p.Add(annotations)
	}

	height := vg.Length(len(points))*vg.Points(36) + 2*vg.Inch
	if height < 4*vg.Inch {
		height = 4 * vg.Inch
	}
	if err := p.Save(11*vg.Inch, height, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func (PlotRenderer) RenderScatter(path string, points []ScatterPoint, highlight int, legend string, style ScatterStyle) error {
	p := plot.New()
	p.Title.Text = style.Title
	p.X.Label.Text = style.XLabel
	p.Y.Label.Text = style.YLabel

	regular := make(plotter.XYs, 0, len(points))
	for i, pt := range points {
		if i == highlight {
			continue
		}
		regular = append(regular, plotter.XY{X: pt.X, Y: pt.Y})
	}

	if len(regular) > 0 {
		scatter, err := plotter.NewScatter(regular)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  style.PointColor,
			Radius: vg.Points(5),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)
	}

	if highlight >= 0 && highlight < len(points) {
		best, err := plotter.NewScatter(plotter.XYs{{X: points[highlight].X, Y: points[highlight].Y}})
		if err != nil {
			return fmt.Errorf("scatter highlight: %w", err)
		}
		best.GlyphStyle = draw.GlyphStyle{
			Color:  style.HighlightColor,
			Radius: vg.Points(7),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(best)
		p.Legend.Add(legend, best)
		p.Legend.Left = true
	}

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(points)),
		Labels: make([]string, len(points)),
	}
	for i, pt := range points {
		labels.XYs[i] = plotter.XY{X: pt.X, Y: pt.Y + 0.008}
		labels.Labels[i] = pt.Label
	}
	annotations, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("scatter annotations: %w", err)
	}
	p.Add(annotations)

	if err := p.Save(10*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
