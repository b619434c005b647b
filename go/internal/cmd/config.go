package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mcdev12/pitchside/go/internal/apiconfig"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file passed with -config. Values set here
// override the FOOTBALL_API_* environment; the key itself is only ever
// referenced by file path.
type Config struct {
	FootballAPI struct {
		BaseURL    string        `yaml:"base_url"`
		Host       string        `yaml:"host"`
		Timeout    time.Duration `yaml:"timeout"`
		APIKeyFile string        `yaml:"api_key_file"`
	} `yaml:"football_api"`
	LogLevel string `yaml:"log_level"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// apiConfig layers the file over the environment and resolves the key.
func apiConfig(file *Config) (apiconfig.Config, error) {
	cfg, err := apiconfig.FromEnv()
	if err != nil {
		return apiconfig.Config{}, err
	}

	if file != nil {
		api := file.FootballAPI
		if api.BaseURL != "" {
			cfg.BaseURL = api.BaseURL
		}
		if api.Host != "" {
			cfg.Host = api.Host
		}
		if api.Timeout > 0 {
			cfg.Timeout = api.Timeout
		}
		if api.APIKeyFile != "" {
			cfg.KeyFile = api.APIKeyFile
		}
	}

	return cfg.Resolve()
}
