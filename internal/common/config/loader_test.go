// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, `
app:
  name: listing-summary
server:
  port: 8080
marketplace:
  base_url: https://marketplace.test
  timeout: 5000
genai:
  api_key: ${OPENAI_API_KEY}
  model: gpt-3.5-turbo
logging:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://marketplace.test", cfg.Marketplace.BaseURL)
	assert.Equal(t, 5000, cfg.Marketplace.Timeout)
	assert.Equal(t, "sk-test", cfg.GenAI.APIKey)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Omitted fields get defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "2025-09-24", cfg.Marketplace.AvailabilityStart)
	assert.Equal(t, "PT4H", cfg.Marketplace.PriceDuration)
	assert.Equal(t, 60000, cfg.GenAI.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoadFromFile_InvalidPort(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, `
server:
  port: -1
genai:
  api_key: ${OPENAI_API_KEY}
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 15*time.Second, GetDuration(15000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
