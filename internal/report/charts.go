package report

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"sort"

	"github.com/modelbench/verdict/internal/aggregate"
	"github.com/modelbench/verdict/internal/models"
)

// ErrNoLatencyData marks the skippable latency chart: no retained model
// has a latency-per-message average.
var ErrNoLatencyData = errors.New("no latency data available to plot")

// ErrNoTradeoffData marks the skippable scatter chart: no retained
// model has both a grammar average and a latency average.
var ErrNoTradeoffData = errors.New("no combined grammar and latency data available to plot")

// BarPoint is one category/value pair handed to the renderer.
type BarPoint struct {
	Label string
	Value float64
}

// BarStyle describes a horizontal bar chart.
type BarStyle struct {
	Title    string
	XLabel   string
	YLabel   string
	Color    color.Color
	XMax     float64
	Annotate func(float64) string
}

// ScatterPoint is one labeled point of the trade-off scatter.
type ScatterPoint struct {
	Label string
	X     float64
	Y     float64
}

// ScatterStyle describes the trade-off scatter chart.
type ScatterStyle struct {
	Title          string
	XLabel         string
	YLabel         string
	PointColor     color.Color
	HighlightColor color.Color
}

// Renderer turns prepared chart data into an image artifact. The
// highlight index of RenderScatter selects the point drawn larger, in
// the highlight color, with the legend entry; pass -1 for none.
type Renderer interface {
	RenderBar(path string, points []BarPoint, style BarStyle) error
	RenderScatter(path string, points []ScatterPoint, highlight int, legend string, style ScatterStyle) error
}

var metricStyles = map[string]struct {
	color color.Color
	title string
}{
	"quality":      {color.RGBA{R: 0x3B, G: 0x73, B: 0xB9, A: 0xFF}, "Average quality score per model"},
	"correctness":  {color.RGBA{R: 0x2C, G: 0xA2, B: 0x5F, A: 0xFF}, "Average correctness score per model"},
	"grammar":      {color.RGBA{R: 0xD9, G: 0x5F, B: 0x02, A: 0xFF}, "Average grammar score per model"},
	"completeness": {color.RGBA{R: 0x75, G: 0x6B, B: 0xB1, A: 0xFF}, "Average completeness score per model"},
}

var (
	latencyBarColor       = color.RGBA{R: 0x5E, G: 0x5E, B: 0x5E, A: 0xFF}
	scatterPointColor     = color.RGBA{R: 0x6B, G: 0xAE, B: 0xD6, A: 0xFF}
	scatterHighlightColor = color.RGBA{R: 0xD9, G: 0x5F, B: 0x02, A: 0xFF}
)

// MetricBarChart renders the per-model bar chart for one of the four
// metrics, bars ascending by that metric's average. Models without an
// average for the metric are left out. An unknown metric name is a
// programming error and fails the run.
func (w *Writer) MetricBarChart(rows []models.ModelAggregate, metric string) (string, error) {
	style, ok := metricStyles[metric]
	if !ok {
		return "", fmt.Errorf("unknown metric %q", metric)
	}

	var points []BarPoint
	for _, row := range rows {
		if avg := row.MetricAvg(metric); avg != nil {
			points = append(points, BarPoint{Label: row.Model, Value: *avg})
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value < points[j].Value })

	path := w.chartPath(metric + "_avg_by_model.png")
	err := w.Renderer.RenderBar(path, points, BarStyle{
		Title:    style.title,
		XLabel:   fmt.Sprintf("Average %s score", capitalize(metric)),
		YLabel:   "Model",
		Color:    style.color,
		XMax:     1.05,
		Annotate: func(v float64) string { return fmt.Sprintf("%.3f", v) },
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s chart: %w", metric, err)
	}
	return path, nil
}

// LatencyBarChart renders the latency-per-message bar chart, ascending,
// excluding models without latency data. Returns ErrNoLatencyData when
// nothing remains to draw.
func (w *Writer) LatencyBarChart(rows []models.ModelAggregate) (string, error) {
	var points []BarPoint
	maxLatency := 0.0
	for _, row := range rows {
		if avg := row.LatencySecondsPerMessageAvg; avg != nil {
			points = append(points, BarPoint{Label: row.Model, Value: *avg})
			if *avg > maxLatency {
				maxLatency = *avg
			}
		}
	}
	if len(points) == 0 {
		return "", ErrNoLatencyData
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value < points[j].Value })

	xMax := 1.0
	if scaled := maxLatency * 1.05; scaled > xMax {
		xMax = scaled
	}

	path := w.chartPath("average_latency_by_model.png")
	err := w.Renderer.RenderBar(path, points, BarStyle{
		Title:    "Average latency per model (per message)",
		XLabel:   "Average latency per message (seconds, lower is better)",
		YLabel:   "Model",
		Color:    latencyBarColor,
		XMax:     xMax,
		Annotate: func(v float64) string { return fmt.Sprintf("%.2fs/msg", v) },
	})
	if err != nil {
		return "", fmt.Errorf("rendering latency chart: %w", err)
	}
	return path, nil
}

// TradeoffScatter renders grammar average against latency per message
// for models carrying both values, highlighting the best trade-off by
// combined dense rank. Returns ErrNoTradeoffData when no model
// qualifies.
func (w *Writer) TradeoffScatter(rows []models.ModelAggregate) (string, error) {
	tradeoff := aggregate.TradeoffPoints(rows)
	if len(tradeoff) == 0 {
		return "", ErrNoTradeoffData
	}
	best := aggregate.BestTradeoff(tradeoff)

	points := make([]ScatterPoint, len(tradeoff))
	for i, p := range tradeoff {
		points[i] = ScatterPoint{Label: p.Model, X: p.LatencyAvg, Y: p.GrammarAvg}
	}

	path := w.chartPath("grammar_vs_latency.png")
	err := w.Renderer.RenderScatter(path, points, best,
		fmt.Sprintf("Best trade-off: %s", tradeoff[best].Model),
		ScatterStyle{
			Title:          "Grammar vs latency (per message)",
			XLabel:         "Average latency per message (seconds, lower is better)",
			YLabel:         "Average grammar score (higher is better)",
			PointColor:     scatterPointColor,
			HighlightColor: scatterHighlightColor,
		})
	if err != nil {
		return "", fmt.Errorf("rendering grammar vs latency chart: %w", err)
	}
	return path, nil
}

func (w *Writer) chartPath(name string) string {
	return filepath.Join(w.Dir, name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
