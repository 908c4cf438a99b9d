package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "127.0.0.1", cfg.API.Host)
	assert.Equal(t, 8000, cfg.API.Port)
	assert.Equal(t, "fail2ban-client", cfg.Fail2ban.ClientPath)
	assert.NotEmpty(t, cfg.Fail2ban.NotFoundMarkers)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
api:
  host: 0.0.0.0
  port: 9000
fail2ban:
  client_path: /usr/local/bin/fail2ban-client
  not_found_markers:
    - no such jail
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, "/usr/local/bin/fail2ban-client", cfg.Fail2ban.ClientPath)
	assert.Equal(t, []string{"no such jail"}, cfg.Fail2ban.NotFoundMarkers)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfigFile(t, `
api:
  port: 9000
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, "127.0.0.1", cfg.API.Host)
	assert.Equal(t, "fail2ban-client", cfg.Fail2ban.ClientPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, "api: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
