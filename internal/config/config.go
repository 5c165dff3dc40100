// Package config loads runtime settings for the kundali CLI and server from
// the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// appName names the cache directory under the user's cache home.
const appName = "kundali"

// Config holds settings read from KUNDALI_* variables.
//
// Empty RedisURL and MongoURI select the file cache and the in-memory
// profile store respectively.
type Config struct {
	CacheDir      string        `env:"KUNDALI_CACHE_DIR"`
	CacheTTL      time.Duration `env:"KUNDALI_CACHE_TTL"      envDefault:"720h"`
	RedisURL      string        `env:"KUNDALI_REDIS_URL"`
	MongoURI      string        `env:"KUNDALI_MONGO_URI"`
	MongoDatabase string        `env:"KUNDALI_MONGO_DATABASE" envDefault:"kundali"`
	Addr          string        `env:"KUNDALI_ADDR"           envDefault:"127.0.0.1:8080"`
	LogLevel      string        `env:"KUNDALI_LOG_LEVEL"      envDefault:"info"`
}

// ParseEnv parses environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the configuration and fills in the cache directory when unset.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("parse env: KUNDALI_CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	if cfg.CacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return Config{}, err
		}
		cfg.CacheDir = dir
	}
	return cfg, nil
}

// Level parses LogLevel. An empty value means info.
func (c Config) Level() (log.Level, error) {
	s := strings.TrimSpace(c.LogLevel)
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse env: KUNDALI_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// DefaultCacheDir returns the cache directory following XDG
// (~/.cache/kundali/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
