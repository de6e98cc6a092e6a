package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/microsaas/console/internal/logging"
	"github.com/microsaas/console/internal/tui"
)

const (
	defaultHTTPAddr     = "127.0.0.1:3000"
	defaultSessionLimit = 1024
	minNarrowWidth      = 40
)

// cliConfig holds the settings shared by the terminal and web front ends.
type cliConfig struct {
	LogLevel           string `mapstructure:"log-level"`
	LogFile            string `mapstructure:"log-file"`
	HTTPAddr           string `mapstructure:"http-addr"`
	SessionLimit       int    `mapstructure:"session-limit"`
	AltScreen          bool   `mapstructure:"alt-screen"`
	Mouse              bool   `mapstructure:"mouse"`
	NarrowWidth        int    `mapstructure:"narrow-width"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("MICROSAAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "")
	v.SetDefault("http-addr", defaultHTTPAddr)
	v.SetDefault("session-limit", defaultSessionLimit)
	v.SetDefault("alt-screen", true)
	v.SetDefault("mouse", true)
	v.SetDefault("narrow-width", tui.DefaultNarrowWidth)
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "microsaas", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (c cliConfig) validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.SessionLimit <= 0 {
		return fmt.Errorf("session-limit must be positive, got %d", c.SessionLimit)
	}
	if c.NarrowWidth < minNarrowWidth {
		return fmt.Errorf("narrow-width must be at least %d, got %d", minNarrowWidth, c.NarrowWidth)
	}
	return nil
}

func (c cliConfig) logging() logging.Config {
	return logging.Config{Level: c.LogLevel, File: c.LogFile}
}
