// Package config handles loading the generator configuration from YAML
// files, a .env file and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/defund/qrgen/qrimage"
)

// Config holds all application configuration values.
type Config struct {
	Content  string `yaml:"content"`
	Output   string `yaml:"output"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

// defaults returns a Config that reproduces the stock generator run.
func defaults() *Config {
	return &Config{
		Content:  qrimage.DefaultContent,
		Output:   qrimage.DefaultOutput,
		Addr:     ":8556",
		LogLevel: "info",
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. Variables from a .env file in the
// working directory are loaded first, then QRGEN_ environment variables
// override any file or default values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies QRGEN_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QRGEN_CONTENT"); v != "" {
		cfg.Content = v
	}
	if v := os.Getenv("QRGEN_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("QRGEN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("QRGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// ContentOverridden reports whether the encoded content differs from the
// built-in URL, through the config file, .env or QRGEN_CONTENT.
func (c *Config) ContentOverridden() bool {
	return c.Content != qrimage.DefaultContent
}

// Validate reports missing required values.
func (c *Config) Validate() error {
	if c.Content == "" {
		return errors.New("config: content is empty")
	}
	if c.Output == "" {
		return errors.New("config: output path is empty")
	}
	return nil
}
