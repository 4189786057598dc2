package scanfilter

import (
	"fmt"

	"github.com/banshee-data/scanfilter/internal/config"
)

// FilterConfig collects the parameters for both filters.
type FilterConfig struct {
	RangeMin float64 // Lower clamp bound in metres (default: 0.5)
	RangeMax float64 // Upper clamp bound in metres (default: 120)
	Columns  int     // Samples per frame, N (default: 1800)
	Depth    int     // Frames per median window, D (default: 5)
}

// FilterConfigFromTuning builds a FilterConfig from a loaded TuningConfig.
func FilterConfigFromTuning(cfg *config.TuningConfig) *FilterConfig {
	return &FilterConfig{
		RangeMin: cfg.GetRangeMin(),
		RangeMax: cfg.GetRangeMax(),
		Columns:  cfg.GetMedianColumns(),
		Depth:    cfg.GetMedianDepth(),
	}
}

// Validate checks both filters' parameters. The returned error is a
// *ConfigError naming the first filter that would reject them.
func (c *FilterConfig) Validate() error {
	if reason := rangeRejection(c.RangeMin, c.RangeMax); reason != "" {
		return &ConfigError{Filter: "RangeFilter", Reason: reason}
	}
	if c.Columns <= 0 || c.Depth <= 0 {
		return &ConfigError{
			Filter: "TempMedianFilter",
			Reason: fmt.Sprintf("columns and depth must be positive, got n=%d d=%d", c.Columns, c.Depth),
		}
	}
	return nil
}

// NewRangeFilterFromConfig builds a RangeFilter from c.
func NewRangeFilterFromConfig(c *FilterConfig) (*RangeFilter, error) {
	return NewRangeFilter(c.RangeMin, c.RangeMax)
}

// NewTempMedianFilterFromConfig builds a TempMedianFilter from c.
func NewTempMedianFilterFromConfig(c *FilterConfig) (*TempMedianFilter, error) {
	return NewTempMedianFilter(c.Columns, c.Depth)
}
