// Package plotter accumulates per-file latency series and renders the two
// plot areas: a raw time-series line chart and a histogram chart whose legend
// carries the percentile annotations.
package plotter

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/w23/latplot/src/logging"
	"github.com/w23/latplot/src/samples"
	"github.com/w23/latplot/src/stats"
)

// legendTitle is stamped next to the legend on both charts.
const legendTitle = "measurements"

// fileSeries is everything one input file contributes to the figure.
type fileSeries struct {
	path   string
	label  string // path + percentile annotations, histogram legend entry
	values []float64
	hist   stats.Histogram
}

// Figure owns the two plot areas. Every successfully added file contributes
// exactly one series to each.
type Figure struct {
	series []fileSeries
}

// New returns an empty figure.
func New() *Figure { return &Figure{} }

// AddFile decodes path, computes its percentile summary and histogram, and
// appends one series to each plot area. A file that decodes to zero complete
// samples returns an error wrapping samples.ErrNoSamples and contributes
// nothing.
func (f *Figure) AddFile(path string) error {
	raw, err := samples.ReadFile(path)
	if err != nil {
		return err
	}
	vals := make([]float64, len(raw))
	for i, v := range raw {
		vals[i] = float64(v)
	}
	sum, err := stats.NewSummary(vals)
	if err != nil {
		return err
	}
	hist, err := stats.NewHistogram(vals, stats.AutoBins(vals))
	if err != nil {
		return err
	}
	logging.Infof("%s: %d samples min=%.0fus max=%.0fus mean=%.1fus bins=%d",
		path, len(vals), floats.Min(vals), floats.Max(vals), stat.Mean(vals, nil), hist.Bins())
	f.series = append(f.series, fileSeries{
		path:   path,
		label:  sum.Label(path),
		values: vals,
		hist:   hist,
	})
	return nil
}

// Len returns the number of files added so far.
func (f *Figure) Len() int { return len(f.series) }

// Paths returns the line-chart legend entries, one per file in add order.
func (f *Figure) Paths() []string {
	out := make([]string, len(f.series))
	for i, s := range f.series {
		out[i] = s.path
	}
	return out
}

// Labels returns the histogram legend entries, one per file in add order.
func (f *Figure) Labels() []string {
	out := make([]string, len(f.series))
	for i, s := range f.series {
		out[i] = s.label
	}
	return out
}

// RenderLine draws the raw sample sequences in file order, one line per file,
// x = sample index.
func (f *Figure) RenderLine(width, height int) image.Image {
	series := make([]chart.Series, 0, len(f.series))
	for _, s := range f.series {
		xs := make([]float64, len(s.values))
		for i := range xs {
			xs[i] = float64(i)
		}
		ys := s.values
		// go-chart needs a non-zero x range
		if len(xs) == 1 {
			xs = []float64{0, 1}
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, chart.ContinuousSeries{Name: s.path, XValues: xs, YValues: ys})
	}
	return f.render(series, width, height)
}

// RenderHistogram draws each file's histogram as a frequency polygon
// (bin center vs count), legend labeled with the percentile annotations.
func (f *Figure) RenderHistogram(width, height int) image.Image {
	series := make([]chart.Series, 0, len(f.series))
	for _, s := range f.series {
		xs := s.hist.Centers()
		ys := s.hist.Counts
		if len(xs) == 1 {
			xs = []float64{s.hist.Edges[0], s.hist.Edges[1]}
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, chart.ContinuousSeries{Name: s.label, XValues: xs, YValues: ys})
	}
	return f.render(series, width, height)
}

func (f *Figure) render(series []chart.Series, width, height int) image.Image {
	if len(series) == 0 {
		return blank(width, height)
	}
	ch := chart.Chart{
		Title:      "Rendering time",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		YAxis:      chart.YAxis{Name: "time (us)"},
		Series:     series,
		Width:      width,
		Height:     height,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		logging.Errorf("chart render: %v; showing blank fallback", err)
		return blank(width, height)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		logging.Errorf("chart decode: %v; showing blank fallback", err)
		return blank(width, height)
	}
	return drawLegendTitle(img, legendTitle)
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
