// Package dto defines data transfer objects for the BEA API responses.
package dto

// DataResponse represents the JSON response from the BEA GetData method.
// Time periods come as "2023" (annual), "2023Q1" (quarterly) or "2023M01"
// (monthly); data values may contain comma thousands separators.
type DataResponse struct {
	BEAAPI struct {
		Results struct {
			Data []struct {
				TimePeriod string `json:"TimePeriod"`
				DataValue  string `json:"DataValue"`
			} `json:"Data"`
			Error *struct {
				APIErrorDescription string `json:"APIErrorDescription"`
			} `json:"Error"`
		} `json:"Results"`
	} `json:"BEAAPI"`
}
