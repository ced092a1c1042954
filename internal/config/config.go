// Package config loads the CLI settings from an optional YAML file,
// EVENTS_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roach88/events/internal/store"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the valid output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "EVENTS"

// Config holds the resolved settings for one invocation.
type Config struct {
	// Store is the event file. Empty means ~/.events/events.csv.
	Store   string `yaml:"store" mapstructure:"store"`
	Format  string `yaml:"format" mapstructure:"format"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// Options controls where Load looks.
type Options struct {
	// Home is the user's home directory. The config file is looked up in
	// Home/.events and a leading "~/" in the store path expands to it.
	Home string

	// Flags, when set, are bound over the file and environment. Only flags
	// the user actually set take precedence.
	Flags *pflag.FlagSet
}

var keys = []string{"store", "format", "verbose"}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{Format: FormatText}
}

// Load resolves the configuration. A missing config file is not an error;
// a malformed one is.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("store", defaults.Store)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if opts.Home != "" {
		v.AddConfigPath(filepath.Join(opts.Home, store.DirName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Home != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	if opts.Flags != nil {
		for _, key := range keys {
			f := opts.Flags.Lookup(key)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", key, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Store = expandHome(cfg.Store, opts.Home)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatText
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("config: invalid format %q (must be %s)", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// StorePath returns the configured store file, or the default location
// under home when none is configured.
func (c *Config) StorePath(home string) string {
	if c.Store != "" {
		return c.Store
	}
	return store.DefaultPath(home)
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
