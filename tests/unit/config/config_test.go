package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradedocs/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, int64(50), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "gemini", cfg.Extractor.Provider)
	assert.Empty(t, cfg.Extractor.APIKey)
	assert.Equal(t, 120, cfg.Extractor.TimeoutSecs)
	assert.Equal(t, config.DefaultSentinel, cfg.Extractor.Sentinel)
	assert.Equal(t, config.DefaultExtractionFields, cfg.Extractor.Fields)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRADEDOCS_SERVER_PORT", ":9090")
	t.Setenv("TRADEDOCS_EXTRACTOR_PROVIDER", "claude")
	t.Setenv("TRADEDOCS_EXTRACTOR_API_KEY", "sk-test")
	t.Setenv("TRADEDOCS_EXTRACTOR_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("TRADEDOCS_EXTRACTOR_TIMEOUT_SECS", "60")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "claude", cfg.Extractor.Provider)
	assert.Equal(t, "sk-test", cfg.Extractor.APIKey)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Extractor.Model)
	assert.Equal(t, 60, cfg.Extractor.TimeoutSecs)
}

func TestLoad_FieldListFromEnv(t *testing.T) {
	t.Setenv("TRADEDOCS_EXTRACTOR_FIELDS", "Invoice Number, Consignee , Gross Weight,")
	t.Setenv("TRADEDOCS_EXTRACTOR_SENTINEL", "N/A")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice Number", "Consignee", "Gross Weight"}, cfg.Extractor.Fields)
	assert.Equal(t, "N/A", cfg.Extractor.Sentinel)
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	t.Setenv("TRADEDOCS_CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:3000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Port)
}
