// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qualg/povm"
)

// Config is the optional YAML file behind --config. Flags set on the
// command line win over it.
type Config struct {
	MaxA       int       `yaml:"max_a"`
	MaxB       int       `yaml:"max_b"`
	Workers    int       `yaml:"workers"`
	Subset     string    `yaml:"subset"`
	Visibility float64   `yaml:"visibility"`
	Log        LogConfig `yaml:"log"`
}

// LogConfig selects the level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var errBadConfig = errors.New("config: invalid value")

func defaultConfig() Config {
	return Config{
		MaxA:       1,
		MaxB:       1,
		Subset:     "all",
		Visibility: 1,
		Log:        LogConfig{Level: "info"},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.MaxA < 0 || c.MaxA > povm.MaxPhotons:
		return fmt.Errorf("%w: max_a %d", errBadConfig, c.MaxA)
	case c.MaxB < 0 || c.MaxB > povm.MaxPhotons:
		return fmt.Errorf("%w: max_b %d", errBadConfig, c.MaxB)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", errBadConfig, c.Workers)
	case c.Visibility < 0 || c.Visibility > 1:
		return fmt.Errorf("%w: visibility %v", errBadConfig, c.Visibility)
	}
	if _, err := parseSubset(c.Subset); err != nil {
		return err
	}
	return nil
}

func parseSubset(s string) (povm.Subset, error) {
	for _, sub := range []povm.Subset{povm.All, povm.Leq, povm.Greater} {
		if sub.String() == s {
			return sub, nil
		}
	}
	return povm.All, fmt.Errorf("%w: subset %q", errBadConfig, s)
}
