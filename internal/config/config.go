// Package config loads the driver's run configuration via viper, layering
// config file, environment variables, and defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the dynsssp driver needs to load a graph, pick a
// source and target, synthesize a batch, run it, and record the result.
type Config struct {
	Dataset struct {
		Path     string `mapstructure:"path"`
		OneBased bool   `mapstructure:"one_based"`
		Version  string `mapstructure:"version"`
	} `mapstructure:"dataset"`

	Batch struct {
		Size int   `mapstructure:"size"`
		Seed int64 `mapstructure:"seed"`
	} `mapstructure:"batch"`

	Target struct {
		MinDistance float64 `mapstructure:"min_distance"`
	} `mapstructure:"target"`

	Results struct {
		CSVPath string `mapstructure:"csv_path"`
	} `mapstructure:"results"`
}

// Load reads configuration from configPath (if non-empty) and from any
// "dynsssp.yaml"/"dynsssp.yml" found on the standard search path, layering
// environment variables (DYNSSSP_ prefix) on top, and falling back to
// defaults for anything left unset.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dynsssp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/dynsssp")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("dynsssp")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.one_based", false)
	v.SetDefault("dataset.version", "dev")

	v.SetDefault("batch.size", 15000)
	v.SetDefault("batch.seed", int64(123))

	v.SetDefault("target.min_distance", 5.0)

	v.SetDefault("results.csv_path", "results.csv")
}

// Validate checks the fields the driver cannot safely proceed without.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if c.Batch.Size <= 0 {
		return fmt.Errorf("batch.size must be positive, got %d", c.Batch.Size)
	}
	if c.Target.MinDistance < 0 {
		return fmt.Errorf("target.min_distance must be non-negative, got %g", c.Target.MinDistance)
	}

	return nil
}
