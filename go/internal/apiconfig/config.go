// Package apiconfig resolves API-Football client settings from the
// environment. The API key is never read from source; it comes from
// FOOTBALL_API_KEY or from the file named by FOOTBALL_API_KEY_FILE.
package apiconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mcdev12/pitchside/go/clients"
	"github.com/mcdev12/pitchside/go/clients/football_api_client"
)

const (
	EnvBaseURL = "FOOTBALL_API_BASE_URL"
	EnvHost    = "FOOTBALL_API_HOST"
	EnvKey     = "FOOTBALL_API_KEY"
	EnvKeyFile = "FOOTBALL_API_KEY_FILE"
	EnvTimeout = "FOOTBALL_API_TIMEOUT"
)

// ErrMissingAPIKey is returned when neither key source is set.
var ErrMissingAPIKey = errors.New("football api key is not configured: set " + EnvKey + " or " + EnvKeyFile)

// Config mirrors football_api_client.Config without the transport. KeyFile
// is only consulted by Resolve when APIKey is empty.
type Config struct {
	BaseURL string
	Host    string
	APIKey  string
	KeyFile string
	Timeout time.Duration
}

// NewConfigFromEnv reads FOOTBALL_API_* variables and resolves the key. An
// inline key wins over the key file.
func NewConfigFromEnv() (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	return cfg.Resolve()
}

// FromEnv reads FOOTBALL_API_* variables without touching the key file, so
// callers can layer further overrides before calling Resolve.
func FromEnv() (Config, error) {
	timeout, err := getEnvAsDuration(EnvTimeout, clients.DefaultTimeout)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BaseURL: getEnv(EnvBaseURL, football_api_client.DefaultBaseURL),
		Host:    getEnv(EnvHost, football_api_client.DefaultRapidAPIHost),
		APIKey:  os.Getenv(EnvKey),
		KeyFile: os.Getenv(EnvKeyFile),
		Timeout: timeout,
	}, nil
}

// Resolve fills APIKey from KeyFile when needed and fails if no key is left.
func (c Config) Resolve() (Config, error) {
	if c.APIKey == "" && c.KeyFile != "" {
		key, err := readSecretFile(c.KeyFile)
		if err != nil {
			return Config{}, err
		}
		c.APIKey = key
	}

	if c.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return c, nil
}

// ClientConfig converts to the client's configuration.
func (c Config) ClientConfig() football_api_client.Config {
	return football_api_client.Config{
		BaseURL: c.BaseURL,
		Host:    c.Host,
		APIKey:  c.APIKey,
		Timeout: c.Timeout,
	}
}

func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
