package config

import "os"

// parseEnv overlays Config with values from the environment. Variables that
// are unset or empty leave the current value untouched, mirroring how the
// hosting environment only overrides what it explicitly sets.
//
// Recognized variables:
//
//	API_BASE_URL  API base URL override
//	API_PORT      localhost API port override
//	PAGE_ORIGIN   origin the auth pages are served from
//	SESSION_DB    path of the local session database
//	LOG_LEVEL     log level
//	START_PAGE    start page
func parseEnv(cfg *Config) {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		cfg.APIPort = v
	}
	if v := os.Getenv("PAGE_ORIGIN"); v != "" {
		cfg.Origin = v
	}
	if v := os.Getenv("SESSION_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("START_PAGE"); v != "" {
		cfg.StartPage = v
	}
}
