package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names understood by the client.
const (
	envAPIBaseURL    = "BANDMATE_API_URL"
	envSessionDBPath = "BANDMATE_SESSION_DB"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, without
// overriding variables that are already set. Missing .env is not an
// error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
}
