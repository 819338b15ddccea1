package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 8080,
		"remote_url": "http://localhost:5000",
		"log_level": "debug",
		"use_browser": true,
		"concurrency": 8
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:5000", cfg.RemoteURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "config path is empty"},
		{"missing file", "/nonexistent/path/config.json", "failed to read config file"},
		{"invalid json", writeConfig(t, `{ invalid json }`), "failed to parse config JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero value", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"port too large", Config{Port: 70000}, "'port' failed 'max'"},
		{"bad remote url", Config{RemoteURL: "not a url"}, "'remote_url' failed 'http_url'"},
		{"bad log level", Config{LogLevel: "loud"}, "'log_level' failed 'oneof'"},
		{"bad log format", Config{LogFormat: "xml"}, "'log_format' failed 'oneof'"},
		{"concurrency too high", Config{Concurrency: 100}, "'concurrency' failed 'max'"},
		{"missing template", Config{Template: "/nonexistent/resume.tex"}, "template file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, LogFormat: "json"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, 4, merged.Concurrency)
	assert.Equal(t, ":9000", merged.Addr())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"port": 8080, "log_level": "debug"}`)
	t.Setenv("ATS_PORT", "7070")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("ATS_REMOTE_URL", "https://ats.example.com")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "https://ats.example.com", cfg.RemoteURL)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("ATS_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("ATS_REMOTE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ATS_PORT", "eighty")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATS_PORT must be an integer")

	t.Setenv("ATS_PORT", "")
	t.Setenv("LOG_FORMAT", "yaml")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}
