// Package config resolves footpath settings from, in increasing priority:
// built-in defaults, a YAML config file, FOOTPATH_* environment variables
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultMapPath   = "map.yaml"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	EnvPrefix        = "FOOTPATH"
)

var (
	ErrInvalidLogLevel  = errors.New("config: invalid log level")
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Config is the resolved configuration.
type Config struct {
	MapPath   string `mapstructure:"map"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text | json
	Color     bool   `mapstructure:"color"`

	// File is the config file actually read, empty when none was.
	File string `mapstructure:"-"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"map":        "map",
	"log-level":  "log_level",
	"log-format": "log_format",
	"color":      "color",
}

// Load resolves the configuration. path names an optional YAML file; a
// missing file falls back to defaults, a malformed one is an error. flags may
// be nil; only flags the user actually set override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("map", DefaultMapPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("color", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var used string
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case err == nil:
			used = v.ConfigFileUsed()
		case errors.Is(err, fs.ErrNotExist), errors.As(err, &notFound):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the log level and format.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: %q (want text or json)", ErrInvalidLogFormat, c.LogFormat)
	}
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return l, nil
}

// Logger builds a slog.Logger writing to w in the configured format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
