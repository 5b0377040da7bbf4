// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".keytree.yaml"

type SourceConfig struct {
	History bool   `yaml:"history"` // read shell history when no key files are given
	Shell   string `yaml:"shell"`   // overrides $SHELL detection
}

type IndexConfig struct {
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type DisplayConfig struct {
	MaxPrintKeys int           `yaml:"max_print_keys"`
	RenderTTL    time.Duration `yaml:"render_ttl"`
}

type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Index   IndexConfig   `yaml:"index"`
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Source: SourceConfig{
		History: true,
	},
	Index: IndexConfig{
		ExpectedKeys:      10000,
		FalsePositiveRate: 0.01,
	},
	Display: DisplayConfig{
		MaxPrintKeys: 512,
		RenderTTL:    10 * time.Minute,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.keytree.yaml. A missing or unreadable file gives
// the defaults; it never fails the command.
func LoadConfig() *Config {
	configPath, err := getConfigPath()
	if err != nil {
		slog.Debug("no home directory, using default configuration", "error", err)
		return defaultConfigCopy()
	}
	config, err := loadConfigFrom(configPath)
	if err != nil {
		slog.Warn("ignoring configuration file", "path", configPath, "error", err)
		return defaultConfigCopy()
	}
	return config
}

// loadConfigFrom parses the file at path over the defaults, so keys the
// file leaves out keep their default values.
func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfigCopy()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	config.validate()
	return config, nil
}

func defaultConfigCopy() *Config {
	config := defaultConfig
	return &config
}

// validate replaces values the index or display cannot work with.
func (c *Config) validate() {
	if c.Index.ExpectedKeys == 0 {
		c.Index.ExpectedKeys = defaultConfig.Index.ExpectedKeys
	}
	if c.Index.FalsePositiveRate <= 0 || c.Index.FalsePositiveRate >= 1 {
		c.Index.FalsePositiveRate = defaultConfig.Index.FalsePositiveRate
	}
	if c.Display.MaxPrintKeys <= 0 {
		c.Display.MaxPrintKeys = defaultConfig.Display.MaxPrintKeys
	}
	if c.Display.RenderTTL <= 0 {
		c.Display.RenderTTL = defaultConfig.Display.RenderTTL
	}
	switch c.Source.Shell {
	case "", "zsh", "bash":
	default:
		slog.Warn("unsupported shell in configuration, detecting from $SHELL", "shell", c.Source.Shell)
		c.Source.Shell = ""
	}
}

func writeDefaultConfig(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating the file
// with defaults first when it does not exist yet.
func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 keytree configuration\n")
	fmt.Fprintf(w, "═══════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	shell := config.Source.Shell
	if shell == "" {
		shell = "auto ($SHELL)"
	}
	fmt.Fprintf(w, "%sSources:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • history: %t\n", config.Source.History)
	fmt.Fprintf(w, "  • shell: %s\n\n", shell)

	fmt.Fprintf(w, "%sIndex:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • expected_keys: %d\n", config.Index.ExpectedKeys)
	fmt.Fprintf(w, "  • false_positive_rate: %g\n\n", config.Index.FalsePositiveRate)

	fmt.Fprintf(w, "%sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • max_print_keys: %d\n", config.Display.MaxPrintKeys)
	fmt.Fprintf(w, "  • render_ttl: %s\n", config.Display.RenderTTL)
	return nil
}
