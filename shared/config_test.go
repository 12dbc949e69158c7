package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleConfigJsonc = `{
  // Comments and trailing commas are fine here
  "log_file": "./dev/starling.log",
  "log_level": "Debug",
  "service_port": 5678,
  "db_file": "./dev/starling.db",
  "report_dir": "./dev/reports",
  "lists": [
    {"id": "1234567890123456789", "name": "AI Folks"},
  ],
  "engagement": {"quote_weight": 1.5, "bookmark_weight": 0.5},
  "muted": {"handles": ["spammer"], "keywords": []},
  "ai": {"provider": "ollama", "model": "llama3.1:8b"},
}`

const sampleSecretsJsonc = `{
  "cookies_file": "./dev/cookies.json",
  "api_keys": ["hush"],
  "metrics_auth": "scrape-me",
}`

func setupConfigFiles(t *testing.T) string {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.jsonc")
	secretsPath := filepath.Join(dir, "secrets.jsonc")
	assert.Nil(t, os.WriteFile(cfgPath, []byte(sampleConfigJsonc), 0644))
	assert.Nil(t, os.WriteFile(secretsPath, []byte(sampleSecretsJsonc), 0644))
	t.Setenv(configVarName, cfgPath)
	t.Setenv(secretsVarName, secretsPath)
	return cfgPath
}

func TestLoadConfig_JsoncWithDefaults(t *testing.T) {
	setupConfigFiles(t)

	cfg := LoadConfig()

	assert.Equal(t, "Debug", cfg.LogLevel)
	assert.Equal(t, uint(5678), cfg.ServicePort)
	assert.Equal(t, []ListConfig{{Id: "1234567890123456789", Name: "AI Folks"}}, cfg.Lists)
	assert.Equal(t, 1.5, cfg.Engagement.QuoteWeight)
	assert.Equal(t, 0.5, cfg.Engagement.BookmarkWeight)
	assert.Equal(t, []string{"spammer"}, cfg.Muted.Handles)
	assert.Equal(t, "ollama", cfg.AI.Provider)

	// Omitted fields pick up their defaults
	assert.Equal(t, "x.com", cfg.PlatformHost)
	assert.Equal(t, 40, cfg.PostsPerList)
	assert.Equal(t, 100, cfg.ProfileMaxLists)
	assert.Equal(t, 5, cfg.PreviewFetches)
	assert.Equal(t, 2000, cfg.AI.MaxTokens)

	assert.Equal(t, "./dev/cookies.json", cfg.Secrets.CookiesFile)
	assert.Equal(t, []string{"hush"}, cfg.Secrets.ApiKeys)
	assert.Equal(t, "scrape-me", cfg.Secrets.MetricsAuth)
}

func TestSaveConfig_RoundTripWithoutSecrets(t *testing.T) {
	cfgPath := setupConfigFiles(t)

	cfg := LoadConfig()
	cfg.Muted.Keywords = []string{"giveaway"}
	cfg.Engagement.BookmarkWeight = 2.0
	cfg.Lists = append(cfg.Lists, ListConfig{Id: "42", Name: "News"})
	assert.Nil(t, SaveConfig(cfg))

	reloaded := LoadConfig()
	assert.Equal(t, cfg.Lists, reloaded.Lists)
	assert.Equal(t, cfg.Muted, reloaded.Muted)
	assert.Equal(t, 2.0, reloaded.Engagement.BookmarkWeight)
	assert.Equal(t, cfg.AI, reloaded.AI)

	// Secrets never leak into the saved config file
	saved, err := os.ReadFile(cfgPath)
	assert.Nil(t, err)
	assert.NotContains(t, string(saved), "hush")
	assert.NotContains(t, string(saved), "cookies_file")
	assert.NotContains(t, string(saved), "scrape-me")
}
