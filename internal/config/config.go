// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/jetty-project/jdkpathfinder/internal/host"
	"github.com/jetty-project/jdkpathfinder/internal/toolchains"
	"github.com/joomcode/errorx"
	"github.com/spf13/viper"
)

const envPrefix = "JDKPATHFINDER"

// Config holds the global configuration for the application.
type Config struct {
	Log       logx.LoggingConfig `yaml:"log" json:"log"`
	Inventory string             `yaml:"inventory" json:"inventory"` // cluster inventory file (yaml, toml or json)
	Workspace string             `yaml:"workspace" json:"workspace"` // directory the node files are written to
	Format    string             `yaml:"format" json:"format"`
	Suffix    string             `yaml:"suffix" json:"suffix"`
	Env       []string           `yaml:"env" json:"env"` // KEY=VALUE run environment entries applied over the inventory environment
}

// Validate checks the output format is known.
func (c Config) Validate() error {
	if _, err := toolchains.ParseFormat(c.Format); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid format: %s", c.Format)
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		return errorx.IllegalArgument.New("invalid suffix %q: must not contain path separators", c.Suffix)
	}
	if _, err := host.ParsePairs(c.Env); err != nil {
		return err
	}
	return nil
}

// RunEnv returns the configured run environment. Later entries win.
func (c Config) RunEnv() host.EnvVars {
	env, err := host.ParsePairs(c.Env)
	if err != nil {
		return host.EnvVars{}
	}
	return env
}

// OutputFormat returns the parsed output format.
func (c Config) OutputFormat() toolchains.Format {
	f, err := toolchains.ParseFormat(c.Format)
	if err != nil {
		return toolchains.FormatToolchains
	}
	return f
}

var globalConfig = defaultConfig()

func init() {
	// logging is usable before a config file is loaded
	if err := logx.Initialize(globalConfig.Log); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize default logging: %v\n", err)
	}
}

func defaultConfig() Config {
	return Config{
		Log: logx.LoggingConfig{
			Level:          "Info",
			ConsoleLogging: true,
			FileLogging:    false,
		},
		Workspace: ".",
		Format:    string(toolchains.FormatToolchains),
	}
}

// Initialize loads the configuration from the specified file.
//
// Parameters:
//   - path: The path to the configuration file.
//
// Returns:
//   - An error if the configuration cannot be loaded.
func Initialize(path string) error {
	if path != "" {
		globalConfig = defaultConfig()
		viper.Reset()
		viper.SetConfigFile(path)
		viper.SetEnvPrefix(envPrefix)
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		err := viper.ReadInConfig()
		if err != nil {
			return NewNotFoundError(err, path)
		}

		if err := viper.Unmarshal(&globalConfig); err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
				WithProperty(errorx.PropertyPayload(), path)
		}

		if err := globalConfig.Validate(); err != nil {
			return NewInvalidError(err, path)
		}
	}

	return nil
}

// Get returns the loaded configuration.
//
// Returns:
//   - The global configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	globalConfig = *c
	return nil
}

// Reset restores the default configuration.
func Reset() {
	globalConfig = defaultConfig()
}

// Override applies the non-empty values of overrides, typically taken from
// command line flags, on top of the loaded configuration.
func Override(overrides Config) error {
	c := globalConfig
	if overrides.Inventory != "" {
		c.Inventory = overrides.Inventory
	}
	if overrides.Workspace != "" {
		c.Workspace = overrides.Workspace
	}
	if overrides.Format != "" {
		c.Format = overrides.Format
	}
	if overrides.Suffix != "" {
		c.Suffix = overrides.Suffix
	}
	if len(overrides.Env) > 0 {
		c.Env = append(append([]string(nil), c.Env...), overrides.Env...)
	}
	return Set(&c)
}
