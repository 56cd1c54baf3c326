// Package config loads and persists casedesk configuration.
//
// Configuration lives in $CASEDESK_HOME/config.yaml (default ~/.casedesk).
// A project-local .casedesk/config.yaml may replace whole top-level sections,
// and a small set of environment variables override individual values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvHome      = "CASEDESK_HOME"
	EnvLogLevel  = "CASEDESK_LOG_LEVEL"
	EnvLogFormat = "CASEDESK_LOG_FORMAT"
	EnvCaseFile  = "CASEDESK_CASE_FILE"
)

// configFileName is the name of the configuration file inside the config directory.
const configFileName = "config.yaml"

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the complete casedesk configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Guidance GuidanceConfig `yaml:"guidance"`
	Case     CaseConfig     `yaml:"case"`
	Logging  LoggingConfig  `yaml:"logging"`

	configPath string
	loadErr    error
}

// DisplayConfig controls dashboard rendering.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	Locale         string `yaml:"locale"`
	Width          int    `yaml:"width"`
	Color          bool   `yaml:"color"`
}

// GuidanceConfig selects the guidance catalog.
type GuidanceConfig struct {
	// Catalog is a path to a YAML catalog. Empty uses the built-in catalog.
	Catalog         string `yaml:"catalog"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// CaseConfig selects the case record shown by default.
type CaseConfig struct {
	// File is a YAML or JSON case file. Empty uses the built-in sample case.
	File            string `yaml:"file"`
	WatchDebounceMs int    `yaml:"watch_debounce_ms"`
}

// Defaults for a fresh configuration.
const (
	defaultCurrencySymbol  = "₹"
	defaultLocale          = "en"
	defaultWidth           = 100
	defaultCacheTTLSeconds = 300
	defaultWatchDebounceMs = 200
	minWidth               = 40
)

// Default returns a configuration populated with defaults only. It does not
// read the filesystem or environment.
func Default() *Config {
	cfg := &Config{
		Display: DisplayConfig{
			CurrencySymbol: defaultCurrencySymbol,
			Locale:         defaultLocale,
			Width:          defaultWidth,
			Color:          true,
		},
		Guidance: GuidanceConfig{CacheTTLSeconds: defaultCacheTTLSeconds},
		Case:     CaseConfig{WatchDebounceMs: defaultWatchDebounceMs},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		cfg.Logging.File = filepath.Join(dir, "logs", "casedesk.log")
	}
	return cfg
}

// New returns the defaults overlaid with the config file, if present, and the
// environment. A malformed file does not fail construction; the error is kept
// and reported by Validate.
func New() *Config {
	cfg := Default()
	if cfg.configPath != "" {
		if err := cfg.loadFile(cfg.configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			cfg.loadErr = err
		}
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvCaseFile); v != "" {
		c.Case.File = v
	}
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate reports the first problem with the configuration, including any
// error encountered while reading the config file.
func (c *Config) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}
	if c.Display.Width < minWidth {
		return fmt.Errorf("display.width must be at least %d, got %d", minWidth, c.Display.Width)
	}
	if strings.TrimSpace(c.Display.CurrencySymbol) == "" {
		return errors.New("display.currency_symbol must not be empty")
	}
	if c.Guidance.CacheTTLSeconds < 0 {
		return fmt.Errorf("guidance.cache_ttl_seconds must be >= 0, got %d", c.Guidance.CacheTTLSeconds)
	}
	if c.Case.WatchDebounceMs < 0 {
		return fmt.Errorf("case.watch_debounce_ms must be >= 0, got %d", c.Case.WatchDebounceMs)
	}
	return c.Logging.Validate()
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := []string{
		"display.currency_symbol", "display.locale", "display.width", "display.color",
		"guidance.catalog", "guidance.cache_ttl_seconds",
		"case.file", "case.watch_debounce_ms",
		"logging.level", "logging.format", "logging.file",
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "display.currency_symbol":
		return c.Display.CurrencySymbol, nil
	case "display.locale":
		return c.Display.Locale, nil
	case "display.width":
		return strconv.Itoa(c.Display.Width), nil
	case "display.color":
		return strconv.FormatBool(c.Display.Color), nil
	case "guidance.catalog":
		return c.Guidance.Catalog, nil
	case "guidance.cache_ttl_seconds":
		return strconv.Itoa(c.Guidance.CacheTTLSeconds), nil
	case "case.file":
		return c.Case.File, nil
	case "case.watch_debounce_ms":
		return strconv.Itoa(c.Case.WatchDebounceMs), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a dotted key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "display.currency_symbol":
		c.Display.CurrencySymbol = value
	case "display.locale":
		c.Display.Locale = value
	case "display.width":
		return setInt(&c.Display.Width, key, value)
	case "display.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected boolean, got %q", key, value)
		}
		c.Display.Color = b
	case "guidance.catalog":
		c.Guidance.Catalog = value
	case "guidance.cache_ttl_seconds":
		return setInt(&c.Guidance.CacheTTLSeconds, key, value)
	case "case.file":
		c.Case.File = value
	case "case.watch_debounce_ms":
		return setInt(&c.Case.WatchDebounceMs, key, value)
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: expected integer, got %q", key, value)
	}
	*dst = n
	return nil
}
