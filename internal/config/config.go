// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type Config struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	Theme        string        `mapstructure:"theme"`
	Debug        bool          `mapstructure:"debug"`
}

var defaultConfig = Config{
	PollInterval: 500 * time.Millisecond,
	MaxAttempts:  0, // retry forever, matching the original widget
	Theme:        "monokai",
	Debug:        false,
}

// ConfigDir returns the directory holding config.yaml.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "showhide")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configDir := ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		// Config can still work from the current directory
		fmt.Fprintf(os.Stderr, "Warning: failed to create config directory %s: %v\n", configDir, err)
	}
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("SHOWHIDE")
	viper.AutomaticEnv()

	viper.SetDefault("poll_interval", defaultConfig.PollInterval)
	viper.SetDefault("max_attempts", defaultConfig.MaxAttempts)
	viper.SetDefault("theme", defaultConfig.Theme)
	viper.SetDefault("debug", defaultConfig.Debug)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.PollInterval <= 0 {
		config.PollInterval = defaultConfig.PollInterval
	}
	if config.MaxAttempts < 0 {
		config.MaxAttempts = 0
	}
	if config.Theme == "" {
		config.Theme = defaultConfig.Theme
	}

	return &config, nil
}

func SaveConfig(config *Config) error {
	viper.Set("poll_interval", config.PollInterval)
	viper.Set("max_attempts", config.MaxAttempts)
	viper.Set("theme", config.Theme)
	viper.Set("debug", config.Debug)

	configDir := ConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
