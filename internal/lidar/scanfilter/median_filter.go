package scanfilter

import (
	"fmt"
	"math"
)

// TempMedianFilter returns, for every column, the median of the current
// sample and the samples at that column in the previous D-1 frames. Before
// D frames have been seen the window is simply shorter.
//
// Each column keeps its own order-statistic tree, so an update costs
// O(N log D) instead of re-sorting D values per column.
type TempMedianFilter struct {
	columns int
	depth   int
	windows []columnWindow
	history *frameHistory
	last    []float64
	frames  uint64 // accepted updates since construction or Reset
}

// NewTempMedianFilter returns a filter for frames of n samples with a
// window of d frames. It fails with a *ConfigError if n <= 0 or d <= 0.
func NewTempMedianFilter(n, d int) (*TempMedianFilter, error) {
	if n <= 0 || d <= 0 {
		err := &ConfigError{
			Filter: "TempMedianFilter",
			Reason: fmt.Sprintf("columns and depth must be positive, got n=%d d=%d", n, d),
		}
		opsf("rejected configuration: %v", err)
		return nil, err
	}
	return &TempMedianFilter{
		columns: n,
		depth:   d,
		windows: make([]columnWindow, n),
		history: newFrameHistory(d),
	}, nil
}

// Update folds frame into every column window and returns the per-column
// medians. A frame of the wrong length yields a *ShapeError and leaves the
// filter untouched.
func (f *TempMedianFilter) Update(frame []float64) ([]float64, error) {
	if len(frame) != f.columns {
		return nil, &ShapeError{Want: f.columns, Got: len(frame)}
	}

	// Read before Push: once full, Push reuses the oldest slot.
	var evicted []float64
	if f.history.Full() {
		evicted = f.history.Oldest()
	}

	out := make([]float64, f.columns)
	for i, v := range frame {
		w := &f.windows[i]
		w.push(v)
		if evicted != nil {
			w.evict(evicted[i])
		}
		out[i] = w.median()
	}

	f.history.Push(frame)
	f.last = out
	f.frames++

	if f.frames == uint64(f.depth) {
		diagf("median window full: columns=%d depth=%d", f.columns, f.depth)
	}
	if traceEnabled() {
		s := SummarizeFrame(out)
		tracef("median update #%d: window=%d mean=%.3f std=%.3f min=%.3f max=%.3f",
			f.frames, f.history.Len(), s.Mean, s.StdDev, s.Min, s.Max)
	}
	return append([]float64(nil), out...), nil
}

// Columns returns N, the number of samples per frame.
func (f *TempMedianFilter) Columns() int { return f.columns }

// Depth returns D, the maximum number of frames per window.
func (f *TempMedianFilter) Depth() int { return f.depth }

// WindowSize returns the number of frames currently in every column window.
func (f *TempMedianFilter) WindowSize() int { return f.history.Len() }

// Last returns a copy of the most recent output, or nil before the first
// successful Update.
func (f *TempMedianFilter) Last() []float64 {
	if f.last == nil {
		return nil
	}
	return append([]float64(nil), f.last...)
}

// Reset empties every column window and the history, keeping N and D.
func (f *TempMedianFilter) Reset() {
	for i := range f.windows {
		f.windows[i].clear()
	}
	f.history.Clear()
	f.last = nil
	f.frames = 0
}

// columnWindow is the sliding multiset for one column together with mid,
// the 0-based upper-middle rank of the window. For an odd size mid is the
// median rank; for an even size the median is the mean of ranks mid-1 and
// mid.
//
// Because mid is a rank rather than a handle on an element, it only depends
// on the window size: inserting into an odd-sized window moves it up one,
// removing from an even-sized window moves it down one. Duplicate values
// need no special handling.
type columnWindow struct {
	tree orderTree
	mid  int
}

func (w *columnWindow) push(v float64) {
	if w.tree.Len()%2 == 1 {
		w.mid++
	}
	w.tree.Insert(v)
}

func (w *columnWindow) evict(v float64) {
	n := w.tree.Len()
	if !w.tree.Remove(v) {
		// The history ring and the tree are fed the same values.
		panic(fmt.Sprintf("scanfilter: evicted value %g missing from column window", v))
	}
	if n%2 == 0 {
		w.mid--
	}
}

func (w *columnWindow) median() float64 {
	hi := w.tree.Select(w.mid)
	if w.tree.Len()%2 == 1 {
		return hi
	}
	lo := w.tree.Select(w.mid - 1)
	if lo == hi {
		return hi
	}
	m := (lo + hi) / 2
	if math.IsInf(m, 0) {
		// lo+hi overflowed; halving first loses precision only near zero.
		m = lo/2 + hi/2
	}
	return m
}

func (w *columnWindow) size() int { return w.tree.Len() }

func (w *columnWindow) clear() {
	w.tree.Clear()
	w.mid = 0
}
