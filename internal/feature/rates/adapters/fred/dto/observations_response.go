// Package dto defines data transfer objects for the FRED API responses.
package dto

// ObservationsResponse represents the JSON response from the FRED
// series/observations endpoint. FRED encodes every value as a string and
// uses "." for dates with no reported value.
type ObservationsResponse struct {
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}
