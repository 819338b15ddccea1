// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config is loaded from an optional JSON file and then overridden by the
// environment. All fields are optional.
type Config struct {
	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// RemoteURL is an ats_agent server tried before local execution.
	RemoteURL string `json:"remote_url,omitempty" validate:"omitempty,http_url"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json text"`

	// Rendering
	Template string `json:"template,omitempty"` // Path to a LaTeX template

	// Behavior
	UseBrowser  bool `json:"use_browser,omitempty"` // Render SPA job boards in headless Chrome
	Verbose     bool `json:"verbose,omitempty"`
	Concurrency int  `json:"concurrency,omitempty" validate:"omitempty,min=1,max=64"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Port:        5000,
		LogLevel:    "info",
		LogFormat:   "text",
		Concurrency: 4,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load builds the effective configuration: defaults, then the file at path
// (skipped when path is empty), then environment overrides. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overrides fields from ATS_PORT, ATS_REMOTE_URL, LOG_LEVEL and
// LOG_FORMAT when they are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ATS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: ATS_PORT must be an integer: %w", err)
		}
		c.Port = port
	}
	if v := os.Getenv("ATS_REMOTE_URL"); v != "" {
		c.RemoteURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	return nil
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation (value %v)", jsonName(fe.Field()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// Bool fields are never merged; CLI flags win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RemoteURL == "" {
		result.RemoteURL = defaults.RemoteURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	return result
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func jsonName(field string) string {
	switch field {
	case "RemoteURL":
		return "remote_url"
	case "LogLevel":
		return "log_level"
	case "LogFormat":
		return "log_format"
	default:
		return strings.ToLower(field)
	}
}
