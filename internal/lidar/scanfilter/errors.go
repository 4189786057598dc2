package scanfilter

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("invalid filter configuration")
	// ErrShape is matched by every *ShapeError.
	ErrShape = errors.New("frame length mismatch")
)

// ConfigError reports filter parameters rejected at construction or
// reconfiguration. The filter state is unchanged when it is returned.
type ConfigError struct {
	Filter string // "RangeFilter" or "TempMedianFilter"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Filter, ErrConfig, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// ShapeError reports a frame whose length does not match the filter's
// column count. No column window or history slot is touched.
type ShapeError struct {
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: want %d samples, got %d", ErrShape, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShape }
