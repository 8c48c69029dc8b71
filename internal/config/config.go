// Package config assembles runtime settings for the PeakHub CLI from
// defaults, an optional JSON file, and command-line flags, in that order of
// precedence.
package config

import "time"

// Config holds runtime settings for the PeakHub CLI.
//
// Fields:
//   - StorePath: filesystem location of the local sqlite database that
//     persists the session between runs.
//   - LoginLatency: artificial delay applied to login/registration,
//     standing in for the round trip to a real credential backend.
type Config struct {
	StorePath    string
	LoginLatency time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "peakhub.db"
	c.LoginLatency = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
