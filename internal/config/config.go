// Package config provides Viper-based configuration loading for the client.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// WindowConfig holds the game window settings.
type WindowConfig struct {
	// Width and Height are the initial window size in logical pixels.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// Title is the window title.
	Title string `mapstructure:"title"`
	// Resizable allows the player to resize the window.
	Resizable bool `mapstructure:"resizable"`
}

// BackendConfig holds game-server connection settings.
type BackendConfig struct {
	// BaseURL is the server root, e.g. "http://localhost:8000".
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each request round trip.
	Timeout time.Duration `mapstructure:"timeout"`
}

// AudioConfig toggles the synthesized sound cues.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Backend BackendConfig `mapstructure:"backend"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Window.Width < 320 || c.Window.Height < 240 {
		errs = append(errs, fmt.Sprintf("window size must be at least 320x240, got %dx%d",
			c.Window.Width, c.Window.Height))
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		errs = append(errs, fmt.Sprintf("backend.base_url must be an http(s) URL, got %q", c.Backend.BaseURL))
	}
	if c.Backend.Timeout <= 0 {
		errs = append(errs, "backend.timeout must be positive")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path (optional), applies
// environment variable overrides with the VQ_ prefix, and validates the
// result. A missing file is fine; defaults plus environment fill in.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("VQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 640)
	v.SetDefault("window.title", "Venture Quest")
	v.SetDefault("window.resizable", true)

	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout", "10s")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
