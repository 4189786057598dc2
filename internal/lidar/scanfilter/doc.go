// Package scanfilter owns range-scan preprocessing between frame assembly
// and the perception layers.
//
// Responsibilities: per-sample range clamping and temporal (sliding-window)
// median filtering of fixed-width range frames, one value per azimuth column.
// Key types: Filter, RangeFilter, TempMedianFilter, FilterConfig.
//
// Filters are synchronous and hold no locks. A filter instance must not be
// shared between goroutines without external synchronisation.
//
// Dependency rule: scanfilter may depend on internal/config, but never on
// any perception, tracking or storage package.
package scanfilter
