package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/apodgrab/apodgrab/internal/progress"
)

// Config defines configuration for the apodgrab CLI.
type Config struct {
	APIKey      string        `yaml:"api_key"`
	Endpoint    string        `yaml:"endpoint"`
	Output      string        `yaml:"output"`
	Workers     int           `yaml:"workers"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxSpanDays int           `yaml:"max_span_days"`
	BufferSize  int64         `yaml:"buffer_size"`
	NoMetadata  bool          `yaml:"no_metadata"`
	Progress    bool          `yaml:"progress"`
	Retry       RetryConfig   `yaml:"retry"`
}

// RetryConfig defines retry behavior.
type RetryConfig struct {
	Attempts int           `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		APIKey:      "DEMO_KEY",
		Output:      "apod_images",
		Workers:     5,
		Timeout:     30 * time.Second,
		MaxSpanDays: 100,
		BufferSize:  64 * 1024,
		Retry: RetryConfig{
			Attempts: 3,
		},
	}
}

// yamlConfig is used for YAML unmarshaling with human-readable sizes and
// durations.
type yamlConfig struct {
	APIKey      string          `yaml:"api_key"`
	Endpoint    string          `yaml:"endpoint"`
	Output      string          `yaml:"output"`
	Workers     int             `yaml:"workers"`
	Timeout     string          `yaml:"timeout"`
	MaxSpanDays int             `yaml:"max_span_days"`
	BufferSize  string          `yaml:"buffer_size"`
	NoMetadata  bool            `yaml:"no_metadata"`
	Progress    bool            `yaml:"progress"`
	Retry       yamlRetryConfig `yaml:"retry"`
}

type yamlRetryConfig struct {
	Attempts int    `yaml:"attempts"`
	Delay    string `yaml:"delay"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.APIKey != "" {
		cfg.APIKey = yc.APIKey
	}
	if yc.Endpoint != "" {
		cfg.Endpoint = yc.Endpoint
	}
	if yc.Output != "" {
		cfg.Output = yc.Output
	}
	if yc.Workers != 0 {
		cfg.Workers = yc.Workers
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if yc.MaxSpanDays != 0 {
		cfg.MaxSpanDays = yc.MaxSpanDays
	}
	if yc.BufferSize != "" {
		size, err := progress.ParseBytes(yc.BufferSize)
		if err != nil {
			return Config{}, fmt.Errorf("parse buffer_size: %w", err)
		}
		cfg.BufferSize = size
	}
	cfg.NoMetadata = yc.NoMetadata
	cfg.Progress = yc.Progress
	if yc.Retry.Attempts != 0 {
		cfg.Retry.Attempts = yc.Retry.Attempts
	}
	if yc.Retry.Delay != "" {
		d, err := time.ParseDuration(yc.Retry.Delay)
		if err != nil {
			return Config{}, fmt.Errorf("parse retry.delay: %w", err)
		}
		cfg.Retry.Delay = d
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the APODGRAB_ prefix; NASA_API_KEY is also
// honored for the API key since NASA's docs use that name.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("NASA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("APODGRAB_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("APODGRAB_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("APODGRAB_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("APODGRAB_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse APODGRAB_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("APODGRAB_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse APODGRAB_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("APODGRAB_MAX_SPAN_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse APODGRAB_MAX_SPAN_DAYS: %w", err)
		}
		c.MaxSpanDays = n
	}
	if v := os.Getenv("APODGRAB_BUFFER_SIZE"); v != "" {
		size, err := progress.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("parse APODGRAB_BUFFER_SIZE: %w", err)
		}
		c.BufferSize = size
	}
	if v := os.Getenv("APODGRAB_NO_METADATA"); v != "" {
		c.NoMetadata = v == "true" || v == "1"
	}
	if v := os.Getenv("APODGRAB_PROGRESS"); v != "" {
		c.Progress = v == "true" || v == "1"
	}
	if v := os.Getenv("APODGRAB_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse APODGRAB_RETRY_ATTEMPTS: %w", err)
		}
		c.Retry.Attempts = n
	}
	if v := os.Getenv("APODGRAB_RETRY_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse APODGRAB_RETRY_DELAY: %w", err)
		}
		c.Retry.Delay = d
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("config: api_key is required")
	}
	if c.Output == "" {
		return errors.New("config: output is required")
	}
	if c.Workers <= 0 {
		return errors.New("config: workers must be positive")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	if c.MaxSpanDays <= 0 {
		return errors.New("config: max_span_days must be positive")
	}
	if c.BufferSize <= 0 {
		return errors.New("config: buffer_size must be positive")
	}
	if c.Retry.Attempts < 1 {
		return errors.New("config: retry.attempts must be at least 1")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.APIKey != "" {
		c.APIKey = override.APIKey
	}
	if override.Endpoint != "" {
		c.Endpoint = override.Endpoint
	}
	if override.Output != "" {
		c.Output = override.Output
	}
	if override.Workers != 0 {
		c.Workers = override.Workers
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	if override.MaxSpanDays != 0 {
		c.MaxSpanDays = override.MaxSpanDays
	}
	if override.BufferSize != 0 {
		c.BufferSize = override.BufferSize
	}
	if override.NoMetadata {
		c.NoMetadata = override.NoMetadata
	}
	if override.Progress {
		c.Progress = override.Progress
	}
	if override.Retry.Attempts != 0 {
		c.Retry.Attempts = override.Retry.Attempts
	}
	if override.Retry.Delay != 0 {
		c.Retry.Delay = override.Retry.Delay
	}
	return c
}
