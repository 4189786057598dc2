package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical tuning defaults file.
// This is the single source of truth for all default filter values.
const DefaultConfigPath = "config/tuning.defaults.json"

// TuningConfig represents the root configuration for scan filter parameters.
// Every field is optional; the Get* accessors fall back to built-in defaults
// so a partial file only overrides what it names.
type TuningConfig struct {
	// Range clamp params (metres)
	RangeMin *float64 `json:"range_min,omitempty"`
	RangeMax *float64 `json:"range_max,omitempty"`

	// Temporal median params
	MedianColumns *int `json:"median_columns,omitempty"` // samples per frame (N)
	MedianDepth   *int `json:"median_depth,omitempty"`   // frames per window (D)
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
// Use LoadTuningConfig to load actual values from the defaults file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// DefaultTuningConfig returns a TuningConfig with every field populated
// from the built-in defaults.
func DefaultTuningConfig() *TuningConfig {
	c := EmptyTuningConfig()
	return &TuningConfig{
		RangeMin:      ptrFloat64(c.GetRangeMin()),
		RangeMax:      ptrFloat64(c.GetRangeMax()),
		MedianColumns: ptrInt(c.GetMedianColumns()),
		MedianDepth:   ptrInt(c.GetMedianDepth()),
	}
}

// LoadTuningConfig loads a TuningConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file retain their default values, so
// partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical tuning defaults from DefaultConfigPath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *TuningConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,       // from internal/config/ and cmd/scanfilter/
		"../../../" + DefaultConfigPath,    // from internal/lidar/scanfilter/
		"../../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadTuningConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.RangeMin != nil && math.IsNaN(*c.RangeMin) {
		return fmt.Errorf("range_min must be a number")
	}
	if c.RangeMax != nil && math.IsNaN(*c.RangeMax) {
		return fmt.Errorf("range_max must be a number")
	}
	if lo, hi := c.GetRangeMin(), c.GetRangeMax(); lo > hi {
		return fmt.Errorf("range_min (%g) must not exceed range_max (%g)", lo, hi)
	}

	if c.MedianColumns != nil && *c.MedianColumns <= 0 {
		return fmt.Errorf("median_columns must be positive, got %d", *c.MedianColumns)
	}
	if c.MedianDepth != nil && *c.MedianDepth <= 0 {
		return fmt.Errorf("median_depth must be positive, got %d", *c.MedianDepth)
	}

	return nil
}

// GetRangeMin returns the range_min value or the default.
func (c *TuningConfig) GetRangeMin() float64 {
	if c.RangeMin == nil {
		return 0.5
	}
	return *c.RangeMin
}

// GetRangeMax returns the range_max value or the default.
func (c *TuningConfig) GetRangeMax() float64 {
	if c.RangeMax == nil {
		return 120.0
	}
	return *c.RangeMax
}

// GetMedianColumns returns the median_columns value or the default.
func (c *TuningConfig) GetMedianColumns() int {
	if c.MedianColumns == nil {
		return 1800 // 0.2° azimuth bins
	}
	return *c.MedianColumns
}

// GetMedianDepth returns the median_depth value or the default.
func (c *TuningConfig) GetMedianDepth() int {
	if c.MedianDepth == nil {
		return 5
	}
	return *c.MedianDepth
}
