// Package config loads paneui CLI settings from a YAML file and PANEUI_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides, as in
// PANEUI_LOG_LEVEL or PANEUI_SCAN_STRESS.
const EnvPrefix = "PANEUI"

// Output formats accepted by Scan.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration.
type Config struct {
	// Theme is a theme YAML file. Empty uses the built-in theme.
	Theme    string         `mapstructure:"theme"`
	LogLevel string         `mapstructure:"log_level"`
	Viewport ViewportConfig `mapstructure:"viewport"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Demo     DemoConfig     `mapstructure:"demo"`
}

// ViewportConfig sizes the headless host used by scan.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// ScanConfig holds scan defaults.
type ScanConfig struct {
	Stress         int    `mapstructure:"stress"`
	Strict         bool   `mapstructure:"strict"`
	Format         string `mapstructure:"format"`
	MaxDescendants int    `mapstructure:"max_descendants"`
}

// DemoConfig holds demo window settings.
type DemoConfig struct {
	Title   string `mapstructure:"title"`
	LogFile string `mapstructure:"log_file"`
}

// DefaultPath returns $HOME/.config/paneui/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "paneui", "config.yaml")
}

// Load reads configuration. An explicit path must exist; with an empty path
// the default location is read if present. Environment variables override
// file values.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("theme", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("viewport.width", 1280)
	v.SetDefault("viewport.height", 720)
	v.SetDefault("scan.stress", 0)
	v.SetDefault("scan.strict", false)
	v.SetDefault("scan.format", FormatText)
	v.SetDefault("scan.max_descendants", 400)
	v.SetDefault("demo.title", "PaneUI Demo")
	v.SetDefault("demo.log_file", "")

	v.SetConfigType("yaml")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			if explicit || !isNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks values that flags or files may have set.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Scan.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("scan format %q: want %s or %s", c.Scan.Format, FormatText, FormatJSON)
	}
	if c.Scan.Stress < 0 {
		return fmt.Errorf("scan stress %d: must not be negative", c.Scan.Stress)
	}
	if c.Scan.MaxDescendants <= 0 {
		return fmt.Errorf("scan max_descendants %d: must be positive", c.Scan.MaxDescendants)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport %gx%g: must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

// ParseLevel parses a slog level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
