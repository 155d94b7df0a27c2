package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "SQLVALUE_CONFIG"

type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	ShowKinds   bool   `yaml:"show_kinds"`
}

func DefaultConfig() Config {
	return Config{Prompt: "> "}
}

// LoadConfig reads the YAML config at path on top of DefaultConfig.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return DefaultConfig(), fmt.Errorf("config: %w", err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	return cfg, nil
}

// LoadConfigFromEnv loads the config named by ConfigEnv.
// Unset or empty yields the defaults; a set path must exist.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv(ConfigEnv))
}
