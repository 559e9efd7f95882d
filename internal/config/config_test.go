package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 2024, cfg.Season)
	assert.Len(t, cfg.Leagues, 5)
	assert.Equal(t, "EPL", cfg.Leagues[0].Name)
	assert.Equal(t, "soccer_epl", cfg.Leagues[0].Code)
	assert.Equal(t, 500*time.Millisecond, cfg.ThrottleInterval())
	assert.Equal(t, 2*time.Minute, cfg.OddsTTL())
	assert.Equal(t, 10*time.Minute, cfg.StatsTTL())
	assert.Equal(t, BackendMemory, cfg.Cache.Backend)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: prod
season: 2025
odds_api:
  api_key: from-file
football_api:
  api_key: from-file
leagues:
  - name: EPL
    code: soccer_epl
cache:
  odds_ttl_seconds: 60
`), 0o644))

	t.Setenv("ODDS_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 2025, cfg.Season)
	assert.Equal(t, "from-env", cfg.OddsAPI.APIKey, "env should override file")
	assert.Equal(t, "from-file", cfg.FootballAPI.APIKey)
	assert.Len(t, cfg.Leagues, 1)
	assert.Equal(t, time.Minute, cfg.OddsTTL())
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.ErrorContains(t, cfg.Validate(), "odds_api.api_key")

	cfg.OddsAPI.APIKey = "k1"
	assert.ErrorContains(t, cfg.Validate(), "football_api.api_key")

	cfg.FootballAPI.APIKey = "k2"
	assert.NoError(t, cfg.Validate())

	cfg.Cache.Backend = "memcached"
	assert.ErrorContains(t, cfg.Validate(), "cache.backend")
}
