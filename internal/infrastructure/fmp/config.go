package fmp

import (
	"errors"
	"time"
)

// DefaultBaseURL is the Financial Modeling Prep production endpoint
const DefaultBaseURL = "https://financialmodelingprep.com"

// Errors for FMP configuration
var (
	ErrConfigMissingAPIKey  = errors.New("fmp: api key is required")
	ErrConfigMissingBaseURL = errors.New("fmp: base url is required")
)

// Config holds configuration for the FMP client
type Config struct {
	// BaseURL is the API root, without the /api/v3 suffix
	BaseURL string
	// APIKey is sent as the apikey query parameter
	APIKey string
	// Timeout bounds every request
	Timeout time.Duration
	// RequestsPerSecond limits outbound calls; 0 disables limiting
	RequestsPerSecond float64
	// Burst is the limiter bucket size
	Burst int
}

// NewConfig creates a configuration with defaults
func NewConfig(apiKey string) *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		APIKey:            apiKey,
		Timeout:           15 * time.Second,
		RequestsPerSecond: 5,
		Burst:             10,
	}
}

// Validate checks required fields and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.Burst <= 0 {
		c.Burst = 1
	}
	return nil
}
