// Package entity defines the domain models for economic time series.
package entity

import "time"

// DateLayout is the ISO calendar-date format used everywhere observations
// cross a boundary (external APIs, cache snapshots, HTTP responses).
const DateLayout = "2006-01-02"

// Observation represents one data point of one named series on one day.
// A zero Date or a nil Value marks the field as missing; such rows survive
// fetching and cache round-trips but are dropped by normalization.
type Observation struct {
	SeriesID string    // Series identifier (e.g., "DFF", "DGS10")
	Date     time.Time // Observation date; zero value means missing
	Value    *float64  // Observed value; nil means missing
	Label    string    // Human-readable label, set during normalization
}

// Float64 returns a pointer to v. Convenience for building observations.
func Float64(v float64) *float64 {
	return &v
}
