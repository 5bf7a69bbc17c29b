// Package config loads runtime settings for the Bandmate CLI.
package config

// Config holds runtime settings for the Bandmate CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, no trailing slash.
//   - SessionDBPath: path to the local SQLite file holding the persisted
//     session token.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.SessionDBPath = "bandmate.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if provided) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
