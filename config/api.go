package config

import "time"

// APIConfig contains remote API client configuration.
type APIConfig struct {
	// BaseURL is the root of the remote REST API the console fronts.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api/v1"`

	// Timeout bounds each API request.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
}
