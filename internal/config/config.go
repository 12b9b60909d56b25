package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "https://dev.lunchmoney.app"
	DefaultCacheTTL = 10 * time.Minute
)

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Cache      CacheConfig    `mapstructure:"cache"`
	Review     ReviewConfig   `mapstructure:"review"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL           string  `mapstructure:"base_url"`
	Token             string  `mapstructure:"token"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	DebitAsNegative   bool    `mapstructure:"debit_as_negative"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ReviewConfig.Strict turns malformed transactions into fetch failures
// instead of logged warnings.
type ReviewConfig struct {
	Strict bool `mapstructure:"strict"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var validLevels = []string{"debug", "info", "warn", "error"}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			RequestsPerSecond: 4,
			Burst:             4,
		},
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "USD"},
		Cache:    CacheConfig{TTL: DefaultCacheTTL},
		Log:      LogConfig{Level: "warn"},
	}
}

// HasToken reports whether an API token is configured.
func (c *Config) HasToken() bool {
	return strings.TrimSpace(c.API.Token) != ""
}

// Validate checks everything except the token, which the first-run
// wizard asks for separately.
func (c *Config) Validate() error {
	var errs []string

	if u, err := url.Parse(c.API.BaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid api base url '%s': %v", c.API.BaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid api base url '%s': scheme must be http or https", c.API.BaseURL))
	}

	if c.API.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("invalid requests per second %v: must not be negative", c.API.RequestsPerSecond))
	}
	if c.API.Burst < 0 {
		errs = append(errs, fmt.Sprintf("invalid burst %d: must not be negative", c.API.Burst))
	}

	if len(strings.TrimSpace(c.Defaults.Currency)) != 3 {
		errs = append(errs, fmt.Sprintf("invalid default currency '%s': must be a 3-letter code", c.Defaults.Currency))
	}

	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.Cache.TTL))
	}

	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of %v", c.Log.Level, validLevels))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
