// Package config holds the settings shared by the certsearch command and
// library users, loadable from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/dispatch"
	"github.com/poiesic/certsearch/search"
)

var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigLoad is returned when a configuration file cannot be read or decoded.
	ErrConfigLoad = errors.New("failed to load config")
)

// Config holds search and presentation settings.
type Config struct {
	// BasePath is the URL segment certification pages live under.
	// Default: "certifications"
	BasePath string

	// Language is the preferred language for translations and the URL
	// language segment. Empty means no segment and the default language.
	Language string

	// KeyPrefix marks descriptions that are translation keys.
	// Default: "certifications."
	KeyPrefix string

	// Debounce is the quiet period before a typed query runs.
	// Default: 150ms
	Debounce time.Duration

	// Limit is the maximum number of suggestions, between 1 and 5.
	// Default: 5
	Limit int

	// LocalesDir is a directory of YAML message files. Optional.
	LocalesDir string

	// Catalog is the path of the YAML catalog snapshot.
	Catalog string

	// Cache is a directory for an on-disk catalog cache. Empty keeps the
	// catalog in memory.
	Cache string
}

// fileConfig mirrors Config as written in TOML.
type fileConfig struct {
	BasePath   string `toml:"base_path,omitempty"`
	Language   string `toml:"language,omitempty"`
	KeyPrefix  string `toml:"key_prefix,omitempty"`
	Debounce   string `toml:"debounce,omitempty"`
	Limit      int    `toml:"limit,omitempty"`
	LocalesDir string `toml:"locales_dir,omitempty"`
	Catalog    string `toml:"catalog,omitempty"`
	Cache      string `toml:"cache,omitempty"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBasePath sets the URL base path.
func WithBasePath(basePath string) ConfigOption {
	return func(c *Config) {
		c.BasePath = basePath
	}
}

// WithLanguage sets the preferred language.
func WithLanguage(lang string) ConfigOption {
	return func(c *Config) {
		c.Language = lang
	}
}

// WithKeyPrefix sets the translation key prefix for descriptions.
func WithKeyPrefix(prefix string) ConfigOption {
	return func(c *Config) {
		c.KeyPrefix = prefix
	}
}

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithLimit sets the maximum number of suggestions.
func WithLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.Limit = limit
	}
}

// WithLocalesDir sets the message file directory.
func WithLocalesDir(dir string) ConfigOption {
	return func(c *Config) {
		c.LocalesDir = dir
	}
}

// WithCatalog sets the catalog snapshot path.
func WithCatalog(path string) ConfigOption {
	return func(c *Config) {
		c.Catalog = path
	}
}

// WithCache sets the on-disk cache directory.
func WithCache(dir string) ConfigOption {
	return func(c *Config) {
		c.Cache = dir
	}
}

// DefaultConfig returns a Config with the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		BasePath:  search.DefaultBasePath,
		KeyPrefix: search.DefaultKeyPrefix,
		Debounce:  dispatch.DefaultDelay,
		Limit:     core.MaxSuggestions,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithLanguage("de"),
//	    WithCatalog("catalog.yaml"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	cfg := DefaultConfig()
	if fc.BasePath != "" {
		cfg.BasePath = fc.BasePath
	}
	if fc.Language != "" {
		cfg.Language = fc.Language
	}
	if fc.KeyPrefix != "" {
		cfg.KeyPrefix = fc.KeyPrefix
	}
	if fc.Debounce != "" {
		d, err := time.ParseDuration(fc.Debounce)
		if err != nil {
			return nil, fmt.Errorf("%w: debounce: %w", ErrInvalidConfig, err)
		}
		cfg.Debounce = d
	}
	if fc.Limit != 0 {
		cfg.Limit = fc.Limit
	}
	cfg.LocalesDir = fc.LocalesDir
	cfg.Catalog = fc.Catalog
	cfg.Cache = fc.Cache

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(fileConfig{
		BasePath:   c.BasePath,
		Language:   c.Language,
		KeyPrefix:  c.KeyPrefix,
		Debounce:   c.Debounce.String(),
		Limit:      c.Limit,
		LocalesDir: c.LocalesDir,
		Catalog:    c.Catalog,
		Cache:      c.Cache,
	})
}

// Normalize ensures the configuration is in a canonical form.
// Surrounding slashes are stripped from BasePath and Language is lower-cased.
func (c *Config) Normalize() {
	c.BasePath = strings.Trim(strings.TrimSpace(c.BasePath), "/")
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	c.KeyPrefix = strings.TrimSpace(c.KeyPrefix)
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.BasePath == "" {
		return fmt.Errorf("%w: base path is required", ErrInvalidConfig)
	}
	if c.KeyPrefix == "" {
		return fmt.Errorf("%w: key prefix is required", ErrInvalidConfig)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidConfig)
	}
	if c.Limit < 1 || c.Limit > core.MaxSuggestions {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidConfig, core.MaxSuggestions)
	}
	return nil
}

// SearchOptions converts the configuration into searcher options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithBasePath(c.BasePath),
		search.WithLanguage(c.Language),
		search.WithKeyPrefix(c.KeyPrefix),
		search.WithLimit(c.Limit),
	}
}

// DispatchOptions converts the configuration into dispatcher options.
func (c *Config) DispatchOptions() []dispatch.Option {
	return []dispatch.Option{
		dispatch.WithDelay(c.Debounce),
	}
}
