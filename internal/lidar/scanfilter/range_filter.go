package scanfilter

import (
	"fmt"
	"math"
)

// RangeFilter clamps every sample into [min, max]. Values below min are
// replaced with min and values above max with max. It keeps no state
// between calls.
type RangeFilter struct {
	rangeMin float64
	rangeMax float64
}

// NewRangeFilter returns a clamp over [lo, hi]. It fails with a
// *ConfigError if lo > hi or either bound is NaN.
func NewRangeFilter(lo, hi float64) (*RangeFilter, error) {
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}
	return &RangeFilter{rangeMin: lo, rangeMax: hi}, nil
}

// SetRange replaces the bounds. On error the previous bounds are kept.
func (f *RangeFilter) SetRange(lo, hi float64) error {
	if err := validateRange(lo, hi); err != nil {
		return err
	}
	f.rangeMin, f.rangeMax = lo, hi
	return nil
}

// Range returns the current bounds.
func (f *RangeFilter) Range() (lo, hi float64) {
	return f.rangeMin, f.rangeMax
}

// Update returns a clamped copy of frame. NaN samples are passed through.
// The error is always nil; it exists to satisfy Filter.
func (f *RangeFilter) Update(frame []float64) ([]float64, error) {
	out := make([]float64, len(frame))
	for i, v := range frame {
		switch {
		case v < f.rangeMin:
			out[i] = f.rangeMin
		case v > f.rangeMax:
			out[i] = f.rangeMax
		default:
			out[i] = v
		}
	}
	return out, nil
}

func validateRange(lo, hi float64) error {
	reason := rangeRejection(lo, hi)
	if reason == "" {
		return nil
	}
	err := &ConfigError{Filter: "RangeFilter", Reason: reason}
	opsf("rejected configuration: %v", err)
	return err
}

// rangeRejection returns why [lo, hi] is not a usable clamp, or "" if it is.
func rangeRejection(lo, hi float64) string {
	switch {
	case math.IsNaN(lo) || math.IsNaN(hi):
		return fmt.Sprintf("range bounds must be numbers, got [%g, %g]", lo, hi)
	case lo > hi:
		return fmt.Sprintf("range_min %g > range_max %g", lo, hi)
	}
	return ""
}
