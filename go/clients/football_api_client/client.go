package football_api_client

import (
	"net/http"
	"time"

	"github.com/mcdev12/pitchside/go/clients"
)

// Config controls how the client reaches API-Football. Nothing here has a
// package-level default other than the public endpoint and host; the key must
// be supplied by the caller.
type Config struct {
	BaseURL    string
	Host       string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type FootballApiClient struct {
	*clients.BaseClient
}

func NewFootballApiClient(cfg Config) *FootballApiClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := cfg.Host
	if host == "" {
		host = DefaultRapidAPIHost
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = clients.DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	client := &FootballApiClient{
		BaseClient: clients.NewBaseClient(baseURL, httpClient),
	}

	client.SetHeader(RapidAPIKeyHeader, cfg.APIKey)
	client.SetHeader(RapidAPIHostHeader, host)

	return client
}
