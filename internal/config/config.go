// Package config loads bsviz settings from defaults, an optional config
// file, BSVIZ_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. BSVIZ_DELIMITER.
const EnvPrefix = "BSVIZ"

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Config is the resolved configuration.
type Config struct {
	Delimiter string    `mapstructure:"delimiter"`
	DB        string    `mapstructure:"db"`
	Listen    string    `mapstructure:"listen"`
	Log       LogConfig `mapstructure:"log"`
}

// DefaultDBPath is ~/.bsviz/lessons.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bsviz", "lessons.db")
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", ",")
	v.SetDefault("db", DefaultDBPath())
	v.SetDefault("listen", "127.0.0.1:7860")
	v.SetDefault("log.level", "info")
}

// Load reads cfgFile (or bsviz.yaml from the working directory or ~/.bsviz
// when cfgFile is empty) into v and returns the validated result. A missing
// default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bsviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".bsviz"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks for values the rest of the program cannot work with.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return errors.New("delimiter must not be empty")
	}
	if strings.TrimSpace(c.Delimiter) == "" && c.Delimiter != "\t" && c.Delimiter != " " {
		return fmt.Errorf("delimiter %q is only whitespace", c.Delimiter)
	}
	if strings.ContainsAny(c.Delimiter, "0123456789+-") {
		return fmt.Errorf("delimiter %q would split numbers", c.Delimiter)
	}
	if c.DB == "" {
		return errors.New("db must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
