package scanfilter

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FrameSummary holds aggregate statistics over one frame.
type FrameSummary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation, 0 for a single sample
	Min    float64
	Max    float64
}

// SummarizeFrame computes count, mean, standard deviation and extrema of a
// frame. An empty frame yields the zero summary.
func SummarizeFrame(frame []float64) FrameSummary {
	if len(frame) == 0 {
		return FrameSummary{}
	}
	s := FrameSummary{
		Count: len(frame),
		Min:   floats.Min(frame),
		Max:   floats.Max(frame),
	}
	if len(frame) == 1 {
		s.Mean = frame[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(frame, nil)
	return s
}
