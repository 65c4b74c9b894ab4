package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("OPAL_API_KEY", "")
	path := writeFile(t, `
llm:
  provider: openai
  base_url: https://api.example.com/v1
  api_key: sk-test
  models:
    gemini-3-flash-preview: gpt-4o-mini
log:
  level: debug
concurrency:
  qps: 2
  rpm: 30
jackpot:
  interval_ms: 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Models["gemini-3-flash-preview"])
	assert.Equal(t, 2, cfg.Concurrency.QPS)
	assert.Equal(t, 30, cfg.Concurrency.RPM)
	assert.Equal(t, 30000, cfg.Prompt.AnalyzeLimit)
	assert.Equal(t, 20000, cfg.Prompt.ChatLimit)
	assert.Equal(t, 5*time.Millisecond, cfg.Jackpot.Interval())
	assert.Equal(t, 16, cfg.Jackpot.Ticks)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvKeyOverride(t *testing.T) {
	t.Setenv("OPAL_API_KEY", "from-env")
	cfg, err := LoadConfig(writeFile(t, "llm:\n  api_key: from-file\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.EqualError(t, cfg.Validate(), "llm api key is missing")

	cfg.LLM.APIKey = "k"
	cfg.LLM.Provider = "tavily"
	assert.EqualError(t, cfg.Validate(), "unknown llm provider: tavily")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
