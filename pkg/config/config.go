// Package config provides a reusable loader for blocklog configuration files
// and environment variables. It is versioned so that applications can depend
// on a stable API contract.
//
// Version: v0.1.0
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/crokkon/blocklog/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config is the unified configuration for a blocklog reader process. It
// mirrors the structure of the YAML files Load reads (default.yaml and an
// optional per-environment file, from ./config or the working directory).
type Config struct {
	Log struct {
		Path      string `mapstructure:"path" json:"path"`
		IndexPath string `mapstructure:"index_path" json:"index_path"`
	} `mapstructure:"log" json:"log"`

	Render struct {
		TimestampFormat string `mapstructure:"timestamp_format" json:"timestamp_format"` // datetime|unix|string
		AmountFormat    string `mapstructure:"amount_format" json:"amount_format"`        // structured|string
		KeyFormat       string `mapstructure:"key_format" json:"key_format"`              // hex|string
		AddressPrefix   string `mapstructure:"address_prefix" json:"address_prefix"`
	} `mapstructure:"render" json:"render"`

	Server struct {
		ListenAddr      string `mapstructure:"listen_addr" json:"listen_addr"`
		MetricsEnabled  bool   `mapstructure:"metrics_enabled" json:"metrics_enabled"`
		MetricsAddr     string `mapstructure:"metrics_addr" json:"metrics_addr"`
	} `mapstructure:"server" json:"server"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
		File  string `mapstructure:"file" json:"file"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads configuration files and merges any environment specific
// overrides. The resulting configuration is stored in AppConfig and returned.
//
// The function uses the provided environment name to merge additional config
// files. If env is empty, only the default configuration is loaded.
func Load(env string) (*Config, error) {
	viper.SetConfigName("default")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, utils.Wrap(err, "load config")
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.SetEnvPrefix("BLOCKLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // picks up BLOCKLOG_* overrides, loaded via godotenv in cmd/

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	applyDefaults(&AppConfig)
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the BLOCKLOG_ENV environment variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("BLOCKLOG_ENV", ""))
}

// applyDefaults fills in values Load left zero, so a config file only needs
// to override what it actually changes.
func applyDefaults(c *Config) {
	if c.Log.Path == "" {
		c.Log.Path = utils.EnvOrDefault("BLOCKLOG_PATH", "block_log")
	}
	if c.Render.TimestampFormat == "" {
		c.Render.TimestampFormat = "datetime"
	}
	if c.Render.AmountFormat == "" {
		c.Render.AmountFormat = "structured"
	}
	if c.Render.KeyFormat == "" {
		c.Render.KeyFormat = "hex"
	}
	if c.Render.AddressPrefix == "" {
		c.Render.AddressPrefix = "STM"
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
	if c.Server.MetricsAddr == "" {
		c.Server.MetricsAddr = ":9090"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
