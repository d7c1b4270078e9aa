package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Histogram is a fixed-width binning of one sample sequence. Edges has one
// more element than Counts; bins are half-open [Edges[i], Edges[i+1]) with
// the last bin closed on both sides.
type Histogram struct {
	Edges  []float64
	Counts []float64
}

// Bins returns the number of bins.
func (h Histogram) Bins() int { return len(h.Counts) }

// Centers returns the midpoint of each bin, used as the x position when a
// histogram is drawn as a frequency polygon.
func (h Histogram) Centers() []float64 {
	out := make([]float64, len(h.Counts))
	for i := range out {
		out[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return out
}

// AutoBins selects a bin count for vals as the larger of the Sturges and
// Freedman-Diaconis estimates, mirroring numpy's bins='auto'.
func AutoBins(vals []float64) int {
	n := len(vals)
	if n == 0 {
		return 1
	}
	bins := int(math.Ceil(math.Log2(float64(n)))) + 1 // Sturges
	span := floats.Max(vals) - floats.Min(vals)
	if span <= 0 {
		return bins
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	iqr := percentileSorted(sorted, 75) - percentileSorted(sorted, 25)
	if width := 2 * iqr / math.Cbrt(float64(n)); width > 0 {
		if fd := int(math.Ceil(span / width)); fd > bins {
			bins = fd
		}
	}
	if bins < 1 {
		bins = 1
	}
	return bins
}

// NewHistogram bins vals into the given number of equal-width bins spanning
// [min, max]. A degenerate range (all values equal) is widened by 0.5 on
// each side so the single spike still gets a bin.
func NewHistogram(vals []float64, bins int) (Histogram, error) {
	if len(vals) == 0 {
		return Histogram{}, ErrEmpty
	}
	if bins < 1 {
		bins = 1
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi
	counts := make([]float64, bins)
	for _, v := range vals {
		idx := int(float64(bins) * (v - lo) / (hi - lo))
		if idx >= bins { // max value belongs to the last bin
			idx = bins - 1
		}
		counts[idx]++
	}
	return Histogram{Edges: edges, Counts: counts}, nil
}
