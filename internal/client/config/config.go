package config

import (
	"time"

	"cardhub/internal/client/api"
)

// Config holds runtime settings for the card directory CLI.
//
// Fields:
//   - APIBaseURL: base URL of the directory service, including the /api prefix.
//   - RequestTimeout: optional client-side deadline per request; zero disables it.
//   - DatabasePath: path of the local SQLite file holding session state.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = api.DefaultBaseURL
	c.RequestTimeout = 0
	c.DatabasePath = "cardhub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
