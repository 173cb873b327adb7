// Package bls provides a client for the BLS (Bureau of Labor Statistics) public API.
package bls

import (
	"os"
	"time"
)

// DefaultBaseURL is the public BLS v2 API endpoint.
const DefaultBaseURL = "https://api.bls.gov/publicAPI/v2"

// Config holds configuration for the BLS API client.
type Config struct {
	APIKey  string        // Registration key for the v2 API
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads BLS configuration from environment variables.
// BLS_BASE_URL falls back to the public endpoint when unset.
func LoadConfig() Config {
	base := os.Getenv("BLS_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("BLS_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
