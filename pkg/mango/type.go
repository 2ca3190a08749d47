package mango

import "time"

// AccountHealth is the externally computed solvency snapshot for a
// margin account. Lower means closer to liquidation.
type AccountHealth struct {
	// MaintHealthRatio is the maintenance health ratio in percent.
	MaintHealthRatio float64 `json:"maintHealthRatio"`

	// AccountName is the user-assigned account label, when one exists.
	AccountName string `json:"accountName,omitempty"`
}

// Config is the configuration for the HTTP chain client.
type Config struct {
	// Cluster selects the chain cluster (mainnet, devnet, testnet).
	Cluster string

	// Group is the margin group the service watches.
	Group string

	// EndpointURL overrides the per-cluster default endpoint.
	EndpointURL string

	// Timeout bounds each request to the endpoint.
	Timeout time.Duration
}
