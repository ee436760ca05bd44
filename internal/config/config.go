// Package config provides unified configuration loading for the support agent.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds all configuration for the support agent.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Ingestion     IngestionConfig     `yaml:"ingestion"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	ReadTimeout      Duration `yaml:"read_timeout"`
	WriteTimeout     Duration `yaml:"write_timeout"`
	IdleTimeout      Duration `yaml:"idle_timeout"`
	GracefulShutdown Duration `yaml:"graceful_shutdown"`
}

// GeminiConfig holds Gemini API settings. The API key is deliberately not a
// YAML field; it is injected through the GEMINI_API_KEY environment variable.
type GeminiConfig struct {
	APIKey  string   `yaml:"-"`
	BaseURL string   `yaml:"base_url"`
	Model   string   `yaml:"model"`
	Timeout Duration `yaml:"timeout"`
}

// IngestionConfig holds manual ingestion settings.
type IngestionConfig struct {
	FetchTimeout Duration `yaml:"fetch_timeout"`
	UserAgent    string   `yaml:"user_agent"`
	PollInterval Duration `yaml:"poll_interval"`
	PollCeiling  Duration `yaml:"poll_ceiling"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	ServiceName string `yaml:"service_name"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			ReadTimeout:      Duration(30 * time.Second),
			WriteTimeout:     Duration(5 * time.Minute),
			IdleTimeout:      Duration(120 * time.Second),
			GracefulShutdown: Duration(10 * time.Second),
		},
		Gemini: GeminiConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.0-flash",
			Timeout: Duration(60 * time.Second),
		},
		Ingestion: IngestionConfig{
			FetchTimeout: Duration(60 * time.Second),
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			PollInterval: Duration(5 * time.Second),
			PollCeiling:  Duration(120 * time.Second),
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			LogFormat:   "json",
			ServiceName: "support-agent",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Gemini.BaseURL == "" {
		return fmt.Errorf("gemini base URL is required")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini model is required")
	}
	if c.Ingestion.FetchTimeout <= 0 {
		return fmt.Errorf("ingestion fetch timeout must be positive")
	}
	if c.Ingestion.PollInterval <= 0 {
		return fmt.Errorf("ingestion poll interval must be positive")
	}
	if c.Ingestion.PollCeiling < c.Ingestion.PollInterval {
		return fmt.Errorf("ingestion poll ceiling must be at least one interval")
	}
	return nil
}
