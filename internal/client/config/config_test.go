package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "session.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "login", cfg.StartPage)
	assert.Empty(t, cfg.APIBaseURL)
	assert.Empty(t, cfg.APIPort)
	assert.Empty(t, cfg.Origin)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://127.0.0.1:9999/api", "-d", "other.db", "-s", "signup")

	cfg := LoadConfig()

	assert.Equal(t, "http://127.0.0.1:9999/api", cfg.APIBaseURL)
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, "signup", cfg.StartPage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	withArgs(t)
	t.Setenv("API_PORT", "8081")
	t.Setenv("PAGE_ORIGIN", "https://auth.example.org")
	// set-but-empty behaves like absent
	t.Setenv("API_BASE_URL", "")

	cfg := LoadConfig()

	assert.Equal(t, "8081", cfg.APIPort)
	assert.Equal(t, "https://auth.example.org", cfg.Origin)
	assert.Empty(t, cfg.APIBaseURL)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	withArgs(t, "-p", "9090")
	t.Setenv("API_PORT", "8081")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.APIPort)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.org/api",
		"log_level": "debug"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.org/api", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	// fields absent from the JSON keep their defaults
	assert.Equal(t, "session.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_port": "7000"}`), 0o600))

	withArgs(t, "-c", path, "-p", "7001")

	cfg := LoadConfig()

	assert.Equal(t, "7001", cfg.APIPort)
}
