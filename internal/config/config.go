// Package config resolves ink-tools runtime settings.
//
// Settings come from, in order of precedence: command-line flags bound by the
// caller, INK_TOOLS_* environment variables, an optional YAML config file, and
// defaults. Processing thresholds are fixed constants and are not settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ironsheep/ink-tools/internal/logger"
)

const (
	// EnvPrefix is prepended to upper-cased keys to form environment names.
	EnvPrefix = "INK_TOOLS"

	KeyLogLevel = "log_level"
	KeyNoColor  = "no_color"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	NoColor  bool   `mapstructure:"no_color"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// NewViper returns a viper instance with defaults and environment binding
// configured. Callers bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and returns the resolved settings.
//
// If cfgFile is empty, "ink-tools.yaml" is searched for in the working
// directory and in ~/.config/ink-tools; a missing file is not an error. An
// explicitly named file must exist.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("ink-tools")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ink-tools"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Logger builds the logger described by cfg.
func (c *Config) Logger(options ...logger.Option) *logger.Logger {
	level, _ := logger.ParseLevel(c.LogLevel)

	opts := []logger.Option{logger.WithLevel(level)}
	if c.NoColor {
		opts = append(opts, logger.WithColor(false))
	}
	return logger.New(append(opts, options...)...)
}
