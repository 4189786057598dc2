// Package testutil provides shared test fixtures and reference
// implementations for the scan filter packages.
package testutil

import "sort"

// DemoScans returns a fresh copy of the eight-frame, five-column recording
// used across filter and CLI tests.
func DemoScans() [][]float64 {
	return [][]float64{
		{0.0, 1.0, 2.0, 1.0, 3.0},
		{1.0, 5.0, 7.0, 1.0, 3.0},
		{2.0, 3.0, 4.0, 1.0, 0.0},
		{3.0, 3.0, 3.0, 1.0, 3.0},
		{10.0, 2.0, 4.0, 0.0, 0.0},
		{8.0, 3.0, 5.0, 1.0, 2.0},
		{1.0, 4.0, 3.0, 1.0, 6.0},
		{5.0, 3.0, 9.0, 8.0, 7.0},
	}
}

// MedianOracle recomputes temporal medians by sorting the raw values of the
// last Depth frames on every call. It is slow on purpose and only exists to
// check incremental implementations against the definition.
type MedianOracle struct {
	Depth  int
	frames [][]float64
}

// Update records frame and returns the per-column medians of the window.
func (o *MedianOracle) Update(frame []float64) []float64 {
	o.frames = append(o.frames, append([]float64(nil), frame...))
	if len(o.frames) > o.Depth {
		o.frames = o.frames[1:]
	}
	out := make([]float64, len(frame))
	col := make([]float64, 0, len(o.frames))
	for i := range frame {
		col = col[:0]
		for _, f := range o.frames {
			col = append(col, f[i])
		}
		out[i] = SortedMedian(col)
	}
	return out
}

// SortedMedian sorts vals in place and returns the middle value, or the
// mean of the two middle values for an even count. It panics on empty input.
func SortedMedian(vals []float64) float64 {
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
