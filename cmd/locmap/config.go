package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/locmap"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Sites is the directory holding <identifier>/config.yaml site files.
	Sites string `mapstructure:"sites"`

	Cache     CacheConfig  `mapstructure:"cache"`
	HTTP      HTTPConfig   `mapstructure:"http"`
	Providers []string     `mapstructure:"providers"`
	Log       LogConfig    `mapstructure:"log"`
	Server    ServerConfig `mapstructure:"server"`
}

// CacheConfig selects the store backing the sitemap cache.
type CacheConfig struct {
	// Backend is one of memory, sqlite, leveldb or postgres.
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	DSN     string `mapstructure:"dsn"`
}

// HTTPConfig configures the client used to probe sites.
type HTTPConfig struct {
	Timeout   time.Duration     `mapstructure:"timeout"`
	UserAgent string            `mapstructure:"user_agent"`
	Headers   map[string]string `mapstructure:"headers"`

	// Rate is the request limit per second and host. Zero disables limiting.
	Rate float64 `mapstructure:"rate"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DefaultProviders is the provider chain used unless configured otherwise.
// The link_tag provider costs an extra request per lookup and is opt-in.
var DefaultProviders = []string{"page_type", "site", "robots_txt", "default"}

// LoadConfig reads the configuration file at path, if any, and applies
// LOCMAP_* environment overrides such as LOCMAP_CACHE_BACKEND.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("sites", "sites")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.path", "")
	v.SetDefault("cache.dsn", "")
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("http.user_agent", "")
	v.SetDefault("http.headers", map[string]string{})
	v.SetDefault("http.rate", 0)
	v.SetDefault("providers", DefaultProviders)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":8080")

	v.SetEnvPrefix("LOCMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "memory":
	case "sqlite", "leveldb":
		if c.Cache.Path == "" {
			return locmap.Errorf(locmap.EINVALID, "cache.path is required for the %s backend", c.Cache.Backend)
		}
	case "postgres":
		if c.Cache.DSN == "" {
			return locmap.Errorf(locmap.EINVALID, "cache.dsn is required for the postgres backend")
		}
	default:
		return locmap.Errorf(locmap.EINVALID, "unknown cache backend %q", c.Cache.Backend)
	}

	if c.HTTP.Rate < 0 {
		return locmap.Errorf(locmap.EINVALID, "http.rate must not be negative")
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return locmap.Errorf(locmap.EINVALID, "unknown log format %q", c.Log.Format)
	}
	return nil
}

// NewLogger builds a logger writing to w as configured.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level, _ := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("name", "locmap")
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, locmap.Errorf(locmap.EINVALID, "unknown log level %q", s)
	}
	return level, nil
}
