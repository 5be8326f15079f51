package config

import (
	"net/url"
	"strings"
)

const defaultAPIBase = "http://localhost:" + DefaultAPIPort + "/api"

// ResolveAPIBase produces the absolute base URL, without a trailing slash,
// under which the /signup, /login and /verify endpoints are reachable.
//
// Resolution order (first applicable wins):
//  1. nil config: the fixed local default.
//  2. APIBaseURL override, trailing slashes stripped, otherwise verbatim.
//  3. A usable Origin (absolute http/https URL with a host): "<origin>/api".
//  4. APIPort override (whitespace trimmed): "http://localhost:<port>/api".
//  5. The fixed local default.
//
// Callers resolve once at startup and cache the result.
func ResolveAPIBase(cfg *Config) string {
	if cfg == nil {
		return defaultAPIBase
	}

	if cfg.APIBaseURL != "" {
		return strings.TrimRight(cfg.APIBaseURL, "/")
	}

	if origin, ok := usableOrigin(cfg.Origin); ok {
		return origin + "/api"
	}

	if port := strings.TrimSpace(cfg.APIPort); port != "" {
		return "http://localhost:" + port + "/api"
	}

	return defaultAPIBase
}

// usableOrigin reports whether origin is an absolute http(s) URL and returns
// it with trailing slashes stripped. Scheme-less or malformed values are
// treated as absent.
func usableOrigin(origin string) (string, bool) {
	if origin == "" {
		return "", false
	}
	u, err := url.Parse(origin)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return strings.TrimRight(origin, "/"), true
}
