// Package domain defines domain-level types and errors for the rates feature.
package domain

// Catalog maps a series identifier to its human-readable display label.
// It is built once at startup and treated as read-only afterwards.
type Catalog map[string]string

// Label returns the display label for a series identifier, falling back to
// the raw identifier when the catalog has no entry for it.
func (c Catalog) Label(seriesID string) string {
	if label, ok := c[seriesID]; ok {
		return label
	}
	return seriesID
}

// DefaultCatalog returns the catalog of series this backend knows about.
func DefaultCatalog() Catalog {
	return Catalog{
		// FRED rate series
		"DFF":    "Effective Fed Funds Rate",
		"DGS2":   "2Y Treasury",
		"DGS10":  "10Y Treasury",
		"T10Y2Y": "10Y-2Y Treasury Spread",

		// BLS labor series
		"LNS14000000":   "Unemployment Rate",
		"CUUR0000SA0":   "CPI-U All Items",
		"CES0000000001": "Total Nonfarm Employment",

		// BEA NIPA tables
		"T10101": "Real GDP Percent Change",
		"T20600": "Personal Income",
	}
}
