package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, uint16(5000), cfg.HTTP.Port)
	require.Equal(t, "./data.db", cfg.Store.Path)
	require.Equal(t, "./uploads", cfg.Store.UploadDir)
	require.Equal(t, "./tts", cfg.Store.TTSDir)
	require.Equal(t, "gemini-1.5-flash", cfg.Chat.Model)
	require.Equal(t, "google/gemma-3-27b-it-free", cfg.Translate.Model)
	require.Equal(t, 30*time.Second, cfg.Chat.Timeout)
	require.NotEmpty(t, cfg.Speech.RecognizeURL)
	require.NotEmpty(t, cfg.Speech.SynthesizeURL)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
http:
  port: 8080
store:
  path: /tmp/govseva-test.db
chat:
  model: gemini-2.0-flash
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, uint16(8080), cfg.HTTP.Port)
	require.Equal(t, "/tmp/govseva-test.db", cfg.Store.Path)
	require.Equal(t, "gemini-2.0-flash", cfg.Chat.Model)
	// untouched keys keep their defaults
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/override.db")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("OPENROUTER_MODEL", "meta-llama/llama-3-8b")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, uint16(9090), cfg.HTTP.Port)
	require.Equal(t, "/tmp/override.db", cfg.Store.Path)
	require.Equal(t, "gem-key", cfg.Chat.APIKey)
	require.Equal(t, "or-key", cfg.Translate.APIKey)
	require.Equal(t, "meta-llama/llama-3-8b", cfg.Translate.Model)
}
