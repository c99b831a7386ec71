// Package config loads the dataset preparation settings from an optional
// config file, DMMD_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DMMD"

// Config holds the settings shared by all operations. Each operation reads
// only the fields it needs.
type Config struct {
	// NumChr is the number of chromosome coordinate tables to shift.
	NumChr int `mapstructure:"num_chr" json:"num_chr"`
	// CooDis is the signed coordinate offset.
	CooDis int `mapstructure:"coo_dis" json:"coo_dis"`

	NumAutosomes int      `mapstructure:"num_autosomes" json:"num_autosomes"`
	Allosomes    []string `mapstructure:"allosomes" json:"allosomes"`
	DirFas       string   `mapstructure:"dir_fas" json:"dir_fas"`

	// WMin and WMax bound the inclusive window range of the transforms.
	WMin int `mapstructure:"w_min" json:"w_min"`
	WMax int `mapstructure:"w_max" json:"w_max"`
}

// Default returns the built-in settings: a human karyotype and windows 1-10.
func Default() *Config {
	return &Config{
		NumAutosomes: 22,
		Allosomes:    []string{"X", "Y"},
		DirFas:       ".",
		WMin:         1,
		WMax:         10,
	}
}

// SetDefaults registers the built-in settings on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("num_chr", d.NumChr)
	v.SetDefault("coo_dis", d.CooDis)
	v.SetDefault("num_autosomes", d.NumAutosomes)
	v.SetDefault("allosomes", d.Allosomes)
	v.SetDefault("dir_fas", d.DirFas)
	v.SetDefault("w_min", d.WMin)
	v.SetDefault("w_max", d.WMax)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, if any, on top of the defaults and
// environment, and validates the result.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that counts are non-negative and the window range is
// well formed.
func (c *Config) Validate() error {
	var errs []error
	if c.NumChr < 0 {
		errs = append(errs, &ConfigError{Field: "num_chr", Reason: "must not be negative"})
	}
	if c.NumAutosomes < 0 {
		errs = append(errs, &ConfigError{Field: "num_autosomes", Reason: "must not be negative"})
	}
	if c.WMin < 1 {
		errs = append(errs, &ConfigError{Field: "w_min", Reason: "must be at least 1"})
	}
	if c.WMax < c.WMin {
		errs = append(errs, &ConfigError{Field: "w_max", Reason: fmt.Sprintf("must be at least w_min (%d)", c.WMin)})
	}
	return errors.Join(errs...)
}

// ConfigError describes an invalid setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}
