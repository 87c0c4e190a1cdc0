package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "local", cfg.Lock.Backend)
	assert.Equal(t, 300, cfg.Ledger.MaxPitchLength)
	assert.Equal(t, 15, cfg.Ledger.SubmissionQuota)
	assert.Equal(t, 48*time.Hour, cfg.Ledger.SubmissionWindow)
	assert.Equal(t, 0, cfg.Ledger.ShortlistLimit)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_STORAGE_BACKEND", "redis")
	t.Setenv("API_LEDGER_SHORTLIST_LIMIT", "3")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 3, cfg.Ledger.ShortlistLimit)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidPortOverrideIgnored(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
