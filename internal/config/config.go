// Package config loads service configuration from an optional config file,
// a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultCatalogCacheTTL = 5 * time.Minute
)

// Config holds the service settings. All fields are optional in the config
// file; environment variables override file values.
type Config struct {
	Port            int           `mapstructure:"port"`
	DatabaseURL     string        `mapstructure:"database_url"`
	RedisURL        string        `mapstructure:"redis_url"`
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	UseBrowser      bool          `mapstructure:"use_browser"`
	Template        string        `mapstructure:"template"`
}

// envBindings maps config keys to the environment variables that set them
var envBindings = map[string][]string{
	"port":              {"TAILOR_PORT", "PORT"},
	"database_url":      {"DATABASE_URL"},
	"redis_url":         {"REDIS_URL"},
	"catalog_cache_ttl": {"TAILOR_CATALOG_CACHE_TTL"},
	"log_level":         {"TAILOR_LOG_LEVEL", "LOG_LEVEL"},
	"log_format":        {"TAILOR_LOG_FORMAT", "LOG_FORMAT"},
	"use_browser":       {"TAILOR_USE_BROWSER"},
	"template":          {"TAILOR_TEMPLATE"},
}

// Load reads configuration. When path is empty, a file named config.{yaml,json}
// is looked up in ./configs and the working directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg = cfg.MergeWithDefaults(Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:            DefaultPort,
		CatalogCacheTTL: DefaultCatalogCacheTTL,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CatalogCacheTTL < 0 {
		return fmt.Errorf("config error: 'catalog_cache_ttl' must be non-negative")
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or console")
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.CatalogCacheTTL == 0 {
		result.CatalogCacheTTL = defaults.CatalogCacheTTL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}
