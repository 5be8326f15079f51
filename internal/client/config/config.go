// Package config handles configuration for the OTP auth client,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

// DefaultAPIPort is the port the backend listens on in a local setup.
const DefaultAPIPort = "5000"

// Config holds runtime settings for the auth client.
//
// Fields:
//   - APIBaseURL: explicit API base override; wins over everything else.
//   - APIPort: localhost port override, used when neither APIBaseURL nor a
//     usable Origin is set.
//   - Origin: origin the auth pages are served from (e.g. "https://auth.example.org");
//     when usable, the API is reached under "<origin>/api".
//   - DatabasePath: path of the local session database.
//   - LogLevel: one of debug, info, warn, error.
//   - StartPage: page shown first (signup, login, or dashboard).
type Config struct {
	APIBaseURL   string
	APIPort      string
	Origin       string
	DatabasePath string
	LogLevel     string
	StartPage    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "session.db"
	c.LogLevel = "info"
	c.StartPage = "login"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
