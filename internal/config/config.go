// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads bdx settings from defaults, an optional bdx.yaml,
// BDX_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName  = "bdx"
	fileName = "bdx.yaml"
)

// Theme names accepted by the `theme` key.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrInvalid wraps every validation failure from Config.Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the user-tunable part of bdx. The input session itself is never
// stored here.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Theme    string `mapstructure:"theme" yaml:"theme"`
	Base     string `mapstructure:"base" yaml:"base"`
	Strict   bool   `mapstructure:"strict" yaml:"strict"`
	Prefixes bool   `mapstructure:"prefixes" yaml:"prefixes"`
}

// Defaults returns the default value for every key.
func Defaults() map[string]any {
	return map[string]any{
		"language": "en",
		"theme":    ThemeAuto,
		"base":     radix.Decimal.Short(),
		"strict":   false,
		"prefixes": true,
	}
}

// Default returns a Config holding Defaults().
func Default() Config {
	d := Defaults()
	return Config{
		Language: d["language"].(string),
		Theme:    d["theme"].(string),
		Base:     d["base"].(string),
		Strict:   d["strict"].(bool),
		Prefixes: d["prefixes"].(bool),
	}
}

// StartRadix resolves Base. An empty Base means Decimal.
func (c Config) StartRadix() (radix.Radix, error) {
	if c.Base == "" {
		return radix.Decimal, nil
	}
	return radix.ParseRadix(c.Base)
}

// Normalize fills empty values from Default and lowercases enum keys.
func (c *Config) Normalize() {
	def := Default()
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = def.Language
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	c.Base = strings.ToLower(strings.TrimSpace(c.Base))
	if c.Base == "" {
		c.Base = def.Base
	}
}

// Validate checks enum keys.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: theme %q (want auto, dark or light)", ErrInvalid, c.Theme)
	}
	if _, err := c.StartRadix(); err != nil {
		return fmt.Errorf("%w: base: %w", ErrInvalid, err)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), appName)
		default:
			configDir = filepath.Join("/etc", appName)
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}

	return filepath.Join(configDir, fileName), nil
}

// LoadConfig resolves T from defaults, the config file, the environment and
// the flags of cmd. A missing config file is not an error; a config file
// given explicitly must exist.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("could not read config: %w", err)
		}
	}

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", fmt.Errorf("could not bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("could not decode config: %w", err)
	}

	return c, v.ConfigFileUsed(), nil
}

// Load is LoadConfig for Config with Defaults, followed by Normalize and
// Validate.
func Load(cmd *cobra.Command, explicitPath *string) (Config, string, error) {
	c, used, err := LoadConfig[Config](cmd, Defaults(), explicitPath)
	if err != nil {
		return c, used, err
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return c, used, err
	}
	return c, used, nil
}

// Marshal renders c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile writes c to the user (or system) config path. It refuses
// to replace an existing file unless overwrite is set.
func WriteConfigFile[T any](c *T, system bool, overwrite bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileAt(c, path, overwrite)
}

// WriteConfigFileAt is WriteConfigFile with an explicit path.
func WriteConfigFileAt[T any](c *T, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, os.ErrExist)
		}
	}

	data, err := Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
