// Package config defines Termsense runtime configuration.
//
// Configuration is read from a TOML or YAML file, then overridden by
// TERMSENSE_* environment variables. A missing file leaves the compiled-in
// defaults in place. The zero-value precedence is file < environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/termsense/internal/config/loader"
)

// Config is the root configuration.
type Config struct {
	Clipboard     Clipboard     `toml:"clipboard" yaml:"clipboard"`
	Notifications Notifications `toml:"notifications" yaml:"notifications"`
	Sessions      Sessions      `toml:"sessions" yaml:"sessions"`
}

// Clipboard controls OSC 52 handling at the session layer.
type Clipboard struct {
	// Enabled gates clipboard copy delivery. The interpreter still parses
	// OSC 52; disabled means decoded copies are dropped before the sink.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// MaxDecodedBytes drops copies whose decoded payload exceeds this size.
	// Zero means unlimited.
	MaxDecodedBytes int `toml:"max_decoded_bytes" yaml:"max_decoded_bytes"`
}

// Notifications controls OSC 9/99/777 delivery.
type Notifications struct {
	// Enabled gates notification delivery to the sink.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// FilterScript is an optional Lua script path; see the filter package.
	FilterScript string `toml:"filter_script" yaml:"filter_script"`
}

// Sessions holds per-session defaults.
type Sessions struct {
	// DefaultCols is the terminal width assumed before the host reports one.
	DefaultCols int `toml:"default_cols" yaml:"default_cols"`

	// MaxRows bounds the per-session segment store.
	MaxRows int `toml:"max_rows" yaml:"max_rows"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Clipboard: Clipboard{
			Enabled:         true,
			MaxDecodedBytes: 1 << 20, // 1 MiB
		},
		Notifications: Notifications{
			Enabled: true,
		},
		Sessions: Sessions{
			DefaultCols: 80,
			MaxRows:     10000,
		},
	}
}

// Load reads configuration from path, applies environment overrides, and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loader.ForPath(path).Load(&cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Clipboard.MaxDecodedBytes < 0 {
		return fmt.Errorf("%w: clipboard.max_decoded_bytes %d", ErrInvalidMaxBytes, c.Clipboard.MaxDecodedBytes)
	}
	if c.Sessions.DefaultCols < 1 {
		return fmt.Errorf("%w: sessions.default_cols %d", ErrInvalidCols, c.Sessions.DefaultCols)
	}
	if c.Sessions.MaxRows < 1 {
		return fmt.Errorf("%w: sessions.max_rows %d", ErrInvalidMaxRows, c.Sessions.MaxRows)
	}
	return nil
}

// applyEnv overrides fields from TERMSENSE_* environment variables.
// Unparseable values are ignored; the environment cannot make a running
// process fail on a typo.
func (c *Config) applyEnv() {
	if v, ok := envBool("TERMSENSE_CLIPBOARD_ENABLED"); ok {
		c.Clipboard.Enabled = v
	}
	if v, ok := envInt("TERMSENSE_CLIPBOARD_MAX_BYTES"); ok {
		c.Clipboard.MaxDecodedBytes = v
	}
	if v, ok := envBool("TERMSENSE_NOTIFICATIONS_ENABLED"); ok {
		c.Notifications.Enabled = v
	}
	if v := os.Getenv("TERMSENSE_FILTER_SCRIPT"); v != "" {
		c.Notifications.FilterScript = v
	}
	if v, ok := envInt("TERMSENSE_DEFAULT_COLS"); ok {
		c.Sessions.DefaultCols = v
	}
	if v, ok := envInt("TERMSENSE_MAX_ROWS"); ok {
		c.Sessions.MaxRows = v
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
