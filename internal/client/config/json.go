package config

import (
	"encoding/json"
	"os"

	"github.com/Jaswanthh22/otpauth-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// non-empty values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	APIPort      string `json:"api_port"`
	Origin       string `json:"origin"`
	DatabasePath string `json:"database_path"`
	LogLevel     string `json:"log_level"`
	StartPage    string `json:"start_page"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags;
// if neither is given, no JSON is loaded. Read or unmarshal errors panic
// (caller should recover if desired). Fields absent from the JSON keep their
// current values.
//
// Intended usage is: defaults -> parseJson -> parseEnv -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.APIPort != "" {
		cfg.APIPort = jc.APIPort
	}
	if jc.Origin != "" {
		cfg.Origin = jc.Origin
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.StartPage != "" {
		cfg.StartPage = jc.StartPage
	}
}
