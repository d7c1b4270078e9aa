// Package stats computes summary percentiles and histogram bins for latency
// sample sequences.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Points are the fixed percentile points summarized for every input file.
// They are rendered with inverse labels: the 90th percentile shows as "p10"
// (10% of values are above it).
var Points = []int{50, 75, 90, 99}

// ErrEmpty reports a percentile or histogram request over zero samples.
var ErrEmpty = errors.New("empty sample sequence")

// Summary holds the percentile values for one sample sequence, in the same
// order as Points.
type Summary struct {
	P50 float64
	P75 float64
	P90 float64
	P99 float64
}

// NewSummary computes the fixed percentiles over vals.
func NewSummary(vals []float64) (Summary, error) {
	if len(vals) == 0 {
		return Summary{}, ErrEmpty
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return Summary{
		P50: percentileSorted(sorted, float64(Points[0])),
		P75: percentileSorted(sorted, float64(Points[1])),
		P90: percentileSorted(sorted, float64(Points[2])),
		P99: percentileSorted(sorted, float64(Points[3])),
	}, nil
}

// Values returns the percentile values in Points order.
func (s Summary) Values() []float64 {
	return []float64{s.P50, s.P75, s.P90, s.P99}
}

// Label builds the composite legend label for a file: the file name followed
// by the four inverse-labeled percentile values in parentheses, e.g.
// "render.bin (p50=25us p25=30us p10=37us p01=39us )".
func (s Summary) Label(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" (")
	for i, p := range Points {
		b.WriteString(subLabel(p, s.Values()[i]))
		b.WriteByte(' ')
	}
	b.WriteByte(')')
	return b.String()
}

// subLabel formats one percentile as its inverse label with the value
// truncated to whole microseconds: point 90, value 123.9 -> "p10=123us".
func subLabel(point int, value float64) string {
	return fmt.Sprintf("p%02d=%dus", 100-point, int64(value))
}

// Percentile returns the p-th percentile (0..100) of vals using linear
// interpolation between closest ranks.
func Percentile(vals []float64, p float64) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmpty
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p), nil
}

// percentileSorted interpolates over an already sorted slice. The rank of the
// p-th percentile is p/100*(n-1); values between adjacent order statistics
// are linearly interpolated.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
