// Package config resolves translation settings from defaults, an optional
// YAML file, and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvModel   = "RELEASE_TRANSLATION_MODEL"
	EnvBaseURL = "RELEASE_TRANSLATION_BASE_URL"
)

// Defaults.
const (
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = "60s"
)

// Config holds translation settings.
type Config struct {
	APIKey  string `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // Request timeout as a duration string (e.g. "60s").
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
	}
}

// LoadDotEnv loads a .env file into the process environment. A missing file
// is not an error. Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}

	return nil
}

// LoadFile reads a YAML config file. Environment variables referenced as
// ${VAR} or $VAR are expanded before parsing so secrets can stay out of the
// file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse file: %w", err)
	}

	return cfg, nil
}

// FromEnv reads the settings present in the environment.
func FromEnv() Config {
	return Config{
		APIKey:  os.Getenv(EnvAPIKey),
		Model:   os.Getenv(EnvModel),
		BaseURL: os.Getenv(EnvBaseURL),
	}
}

// Load resolves the effective config: defaults, then the YAML file at path
// (skipped when path is empty), then the environment. Blank values never
// override.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(file)
	}

	cfg = cfg.Merge(FromEnv())

	if _, err := cfg.RequestTimeout(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Merge returns c with every non-blank field of o applied on top. Values are
// trimmed of surrounding whitespace.
func (c Config) Merge(o Config) Config {
	c.APIKey = pick(c.APIKey, o.APIKey)
	c.Model = pick(c.Model, o.Model)
	c.BaseURL = pick(c.BaseURL, o.BaseURL)
	c.Timeout = pick(c.Timeout, o.Timeout)

	return c
}

// HasCredential reports whether an API key is configured.
func (c Config) HasCredential() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// RequestTimeout parses the configured timeout. A blank value is DefaultTimeout.
func (c Config) RequestTimeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.Timeout)
	if raw == "" {
		raw = DefaultTimeout
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: timeout must be positive, got %q", c.Timeout)
	}

	return d, nil
}

func pick(base, override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	return strings.TrimSpace(base)
}
