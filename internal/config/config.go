// Package config handles loading and saving user configuration for ageguess.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/ageguess/internal/agify"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Endpoint  string        `yaml:"endpoint"`   // age-prediction API base URL
	TypeDelay time.Duration `yaml:"type_delay"` // pause before the result starts typing
	TypeSpeed time.Duration `yaml:"type_speed"` // time per revealed character
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:  agify.DefaultEndpoint,
		TypeDelay: 600 * time.Millisecond,
		TypeSpeed: 80 * time.Millisecond,
	}
}

// withDefaults fills zero fields from Default.
func (c Config) withDefaults() Config {
	d := Default()
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.TypeDelay <= 0 {
		c.TypeDelay = d.TypeDelay
	}
	if c.TypeSpeed <= 0 {
		c.TypeSpeed = d.TypeSpeed
	}
	return c
}

// Load reads config.yaml from dir. A missing file yields the defaults.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return c.withDefaults(), nil
}

// Save writes cfg to config.yaml in dir, creating dir if needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ageguess"), nil
}
