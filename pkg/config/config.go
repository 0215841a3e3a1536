// Package config loads cladegram configuration from TOML files.
//
// Configuration is optional: every setting has a default, and the CLI
// flags override whatever the file says. The file is looked up in order:
//
//  1. $CLADEGRAM_CONFIG
//  2. ./cladegram.toml
//  3. $XDG_CONFIG_HOME/cladegram/config.toml (or ~/.config/cladegram/config.toml)
//
// A minimal file:
//
//	[render]
//	width = 70
//	no_labels = false
//	no_dots = false
//
//	[cache]
//	backend = "file"   # file | redis | none
//
//	[serve]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// appName is used for XDG directory lookups.
const appName = "cladegram"

// Config holds the complete application configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig holds default render settings. The booleans are negated so
// the zero value means "labels and dot leaders on", matching the CLI flags.
type RenderConfig struct {
	Width    int  `toml:"width"`
	NoLabels bool `toml:"no_labels"`
	NoDots   bool `toml:"no_dots"`
}

// CacheConfig holds cache backend settings.
type CacheConfig struct {
	// Backend selects the cache implementation: "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend directory (default XDG cache dir).
	Dir string `toml:"dir"`

	// TTL bounds the lifetime of cached artifacts.
	TTL Duration `toml:"ttl"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds redis backend settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration wraps time.Duration for TOML parsing ("30s", "5m").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a TOML file at path.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDefault finds and loads a configuration file from the standard
// locations, falling back to [Default] when none exists.
func LoadDefault() (*Config, error) {
	if path := os.Getenv("CLADEGRAM_CONFIG"); path != "" {
		return Load(path)
	}

	candidates := []string{"./" + appName + ".toml"}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return Default(), nil
}

// applyDefaults fills zero-valued settings.
func (c *Config) applyDefaults() {
	if c.Render.Width == 0 {
		c.Render.Width = 70
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "file"
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 24 * time.Hour
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
	if c.Serve.ReadTimeout.Duration == 0 {
		c.Serve.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Serve.WriteTimeout.Duration == 0 {
		c.Serve.WriteTimeout.Duration = 30 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// CacheDir returns the directory for the file cache backend, honoring an
// explicit override, then XDG_CACHE_HOME, then ~/.cache.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return os.ExpandEnv(c.Cache.Dir), nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the XDG configuration directory for cladegram.
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
