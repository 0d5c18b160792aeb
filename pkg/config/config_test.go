package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Address())
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Server.DocsEnabled)
	assert.Empty(t, cfg.Server.CORS.AllowOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.Server.CORS.AllowMethods)

	assert.Equal(t, "detoxify", cfg.Classifier.Provider)
	assert.Equal(t, "http://localhost:8501", cfg.Classifier.BaseURL)
	assert.Equal(t, 0.5, cfg.Classifier.Threshold)
	assert.Equal(t, 30*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, uint32(5), cfg.Classifier.Breaker.MaxFailures)

	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CLASSIFIER_PROVIDER", " OpenAI ")
	t.Setenv("CLASSIFIER_API_KEY", "sk-test")
	t.Setenv("CLASSIFIER_TIMEOUT", "5s")
	t.Setenv("CLASSIFIER_THRESHOLD", "0.8")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_CORS_ALLOW_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Classifier.Provider)
	assert.Equal(t, "sk-test", cfg.Classifier.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, 0.8, cfg.Classifier.Threshold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.CORS.AllowOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 8100
classifier:
  provider: detoxify
  base_url: http://detoxify:8501
  model: unbiased
  breaker:
    max_failures: 2
    timeout: 1m
metrics:
  enabled: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8100, cfg.Server.Port)
	assert.Equal(t, "http://detoxify:8501", cfg.Classifier.BaseURL)
	assert.Equal(t, "unbiased", cfg.Classifier.Model)
	assert.Equal(t, uint32(2), cfg.Classifier.Breaker.MaxFailures)
	assert.Equal(t, time.Minute, cfg.Classifier.Breaker.Timeout)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("Threshold above one", func(t *testing.T) {
		t.Setenv("CLASSIFIER_THRESHOLD", "1.5")

		_, err := config.Load(t.TempDir())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Port out of range", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")

		_, err := config.Load(t.TempDir())

		assert.Error(t, err)
	})

	t.Run("Malformed config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0600))

		_, err := config.Load(dir)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}
