package mango

import (
	"fmt"
	"net/http"
	"time"

	"mango-alerts-srv/pkg/log"
)

// Default health endpoints per cluster.
var clusterURLs = map[string]string{
	"mainnet": "https://mango-health.mango.markets",
	"devnet":  "https://mango-health.devnet.mango.markets",
	"testnet": "https://mango-health.testnet.mango.markets",
}

const defaultTimeout = 30 * time.Second

// httpClient talks to the account-health endpoint over HTTP.
type httpClient struct {
	l       log.Logger
	baseURL string
	group   string
	client  *http.Client
}

var _ Client = &httpClient{}

// New creates a chain client for the configured cluster and group.
// An unknown cluster without an explicit endpoint aborts startup.
func New(l log.Logger, cfg Config) (Client, error) {
	baseURL := cfg.EndpointURL
	if baseURL == "" {
		url, ok := clusterURLs[cfg.Cluster]
		if !ok {
			return nil, fmt.Errorf("no endpoint known for cluster %q", cfg.Cluster)
		}
		baseURL = url
	}
	if cfg.Group == "" {
		return nil, fmt.Errorf("group is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &httpClient{
		l:       l,
		baseURL: baseURL,
		group:   cfg.Group,
		client:  &http.Client{Timeout: timeout},
	}, nil
}
