// Package config loads askit configuration via Viper from askit.toml and
// ASKIT_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/askit/errors"
	"github.com/teranos/askit/rewrite"
)

// Config is the askit tool configuration.
type Config struct {
	Markers MarkersConfig `mapstructure:"markers"`
	Layout  LayoutConfig  `mapstructure:"layout"`
}

// MarkersConfig names the call-forms subject to rewriting.
type MarkersConfig struct {
	Invoke []string `mapstructure:"invoke"` // ask/llm semantics (default: Ask, LLM)
	Define string   `mapstructure:"define"` // define semantics (default: Define)
}

// LayoutConfig fixes on-disk conventions.
type LayoutConfig struct {
	Subdir      string `mapstructure:"subdir"`       // generated modules + metadata sidecars (default: askit)
	RuntimePath string `mapstructure:"runtime_path"` // import path of the dyn vocabulary package
	SessionFile string `mapstructure:"session_file"` // interactive-session pseudo-file base name
}

// Load reads configuration from askit.toml (working directory) and the
// environment. Missing config files are fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("askit")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ASKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading askit config")
		}
	}

	return LoadWithViper(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", configPath)
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals configuration from a provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling askit config")
	}
	return &config, nil
}

// EngineOptions maps the configuration onto rewrite engine options.
func (c *Config) EngineOptions() rewrite.Options {
	return rewrite.Options{
		InvokeMarkers: c.Markers.Invoke,
		DefineMarker:  c.Markers.Define,
		Subdir:        c.Layout.Subdir,
		RuntimePath:   c.Layout.RuntimePath,
		SessionFile:   c.Layout.SessionFile,
	}
}
