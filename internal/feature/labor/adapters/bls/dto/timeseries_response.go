// Package dto defines data transfer objects for the BLS API responses.
package dto

// TimeseriesRequest is the JSON body sent to the timeseries/data endpoint.
type TimeseriesRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey"`
}

// TimeseriesResponse represents the JSON response from the BLS
// timeseries/data endpoint. Monthly values carry a period of "M01".."M12";
// "M13" is the annual average.
type TimeseriesResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year   string `json:"year"`
				Period string `json:"period"`
				Value  string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}
