// Package config loads the o.yaml configuration for the serve command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zserge/o/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "o.yaml"

	// DefaultAddr is the default listen address of the demo server.
	DefaultAddr = "localhost:3000"

	// DefaultApp is the default demo application.
	DefaultApp = "counter"
)

// Config is the o.yaml configuration.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`

	// App selects the demo application to serve.
	App string `yaml:"app"`

	// Metrics exposes /metrics when true.
	Metrics bool `yaml:"metrics"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no o.yaml exists.
func Default() *Config {
	return &Config{
		Addr:     DefaultAddr,
		App:      DefaultApp,
		Metrics:  true,
		LogLevel: "info",
	}
}

// Load reads and validates the configuration at path. Unset fields fall
// back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Newf(errors.CategoryConfig, "cannot read %s", path).Wrap(err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Newf(errors.CategoryConfig, "malformed %s", path).Wrap(err).
			WithSuggestion("check the YAML syntax; see o.yaml.example")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads ConfigFileName from the working directory, or returns the
// defaults when the file does not exist.
func Discover() (*Config, error) {
	if _, err := os.Stat(ConfigFileName); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(ConfigFileName)
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.Newf(errors.CategoryConfig, "addr must not be empty")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Newf(errors.CategoryConfig, "unknown log_level %q", c.LogLevel).
			WithSuggestion("use one of: debug, info, warn, error")
	}
	return nil
}

// String summarizes the configuration for logs.
func (c *Config) String() string {
	return fmt.Sprintf("addr=%s app=%s metrics=%t log_level=%s", c.Addr, c.App, c.Metrics, c.LogLevel)
}
