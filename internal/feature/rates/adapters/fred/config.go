// Package fred provides a client for the FRED (Federal Reserve Economic Data) API.
package fred

import (
	"os"
	"time"
)

// DefaultBaseURL is the public FRED API endpoint.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// Config holds configuration for the FRED API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads FRED configuration from environment variables.
// FRED_BASE_URL falls back to the public endpoint when unset.
func LoadConfig() Config {
	base := os.Getenv("FRED_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FRED_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
