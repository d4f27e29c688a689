package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads from flags", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"api_base_url":     "https://learn.example/api",
			"ws_base_url":      "wss://learn.example",
			"google_client_id": "gid",
			"request_timeout":  "30s",
		})

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "https://learn.example/api", cfg.APIBaseURL)
		assert.Equal(t, "wss://learn.example", cfg.WSBaseURL)
		assert.Equal(t, "gid", cfg.GoogleClientID)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, DefaultRazorpayKeyID, cfg.RazorpayKeyID, "missing keys keep earlier values")
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-a", "x"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		err := parseJson(defaults(), []string{"-c", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config")
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJson(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}
