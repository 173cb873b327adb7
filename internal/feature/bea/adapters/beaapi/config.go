// Package beaapi provides a client for the BEA (Bureau of Economic Analysis) API.
package beaapi

import (
	"os"
	"time"
)

// DefaultBaseURL is the public BEA API endpoint.
const DefaultBaseURL = "https://apps.bea.gov/api/data"

// Config holds configuration for the BEA API client.
type Config struct {
	APIKey  string        // UserID credential for the API
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads BEA configuration from environment variables.
// BEA_BASE_URL falls back to the public endpoint when unset.
func LoadConfig() Config {
	base := os.Getenv("BEA_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("BEA_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
