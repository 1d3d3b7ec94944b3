// SPDX-License-Identifier: MIT

// Package config loads recipe-analysis settings from an optional YAML file
// (recipe-analysis.yaml), RECIPE_* environment variables and command-line
// flags bound by the caller, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Corpus  CorpusConfig  `mapstructure:"corpus"`
	Louvain LouvainConfig `mapstructure:"louvain"`
	Query   QueryConfig   `mapstructure:"query"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Workers int           `mapstructure:"workers"`
}

// CorpusConfig selects the recipe source and filter.
type CorpusConfig struct {
	Driver         string   `mapstructure:"driver"` // "sqlite" or "pgx"
	DSN            string   `mapstructure:"dsn"`
	File           string   `mapstructure:"file"` // YAML fixture, instead of a database
	Tag            string   `mapstructure:"tag"`
	AllIngredients []string `mapstructure:"all_ingredients"`
	AnyIngredients []string `mapstructure:"any_ingredients"`
}

// LouvainConfig locates the community-detection binaries.
type LouvainConfig struct {
	Convert     string `mapstructure:"convert"`
	Community   string `mapstructure:"community"`
	WorkDir     string `mapstructure:"work_dir"`
	Assignments string `mapstructure:"assignments"` // replay a kept stream instead of running the tool
}

// QueryConfig drives aggregate reconstruction.
type QueryConfig struct {
	Level   int      `mapstructure:"level"`
	Targets []string `mapstructure:"targets"`
	Format  string   `mapstructure:"format"` // text, yaml or json
}

// LogConfig configures zap.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// New returns a viper instance with defaults and environment binding set up.
// Callers bind their flags to it before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("corpus.driver", "")
	v.SetDefault("corpus.dsn", "")
	v.SetDefault("corpus.file", "")
	v.SetDefault("corpus.tag", "")
	v.SetDefault("corpus.all_ingredients", []string{})
	v.SetDefault("corpus.any_ingredients", []string{})
	v.SetDefault("louvain.convert", "convert")
	v.SetDefault("louvain.community", "community")
	v.SetDefault("louvain.work_dir", "")
	v.SetDefault("louvain.assignments", "")
	v.SetDefault("query.level", 1)
	v.SetDefault("query.targets", []string{})
	v.SetDefault("query.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("workers", 1)

	v.SetEnvPrefix("RECIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (path, or recipe-analysis.yaml in the working
// directory when path is empty; a missing default file is not an error),
// unmarshals and validates.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("recipe-analysis")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and mutually exclusive settings.
func (c *Config) Validate() error {
	switch c.Corpus.Driver {
	case "", "sqlite", "pgx":
	default:
		return fmt.Errorf("corpus.driver %q (want sqlite or pgx): %w", c.Corpus.Driver, ErrInvalid)
	}
	if c.Corpus.Driver != "" && c.Corpus.File != "" {
		return fmt.Errorf("corpus.driver and corpus.file are mutually exclusive: %w", ErrInvalid)
	}
	if c.Corpus.Driver != "" && c.Corpus.DSN == "" {
		return fmt.Errorf("corpus.dsn required with corpus.driver %q: %w", c.Corpus.Driver, ErrInvalid)
	}
	if c.Louvain.Convert == "" || c.Louvain.Community == "" {
		return fmt.Errorf("louvain.convert and louvain.community must be set: %w", ErrInvalid)
	}
	switch c.Query.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("query.format %q (want text, yaml or json): %w", c.Query.Format, ErrInvalid)
	}
	if c.Query.Level < 0 {
		return fmt.Errorf("query.level %d is negative: %w", c.Query.Level, ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.Workers, ErrInvalid)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w: %w", c.Log.Level, ErrInvalid, err)
	}
	return nil
}

// Logger builds the zap logger described by c.
func (c LogConfig) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level %q: %w: %w", c.Level, ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
