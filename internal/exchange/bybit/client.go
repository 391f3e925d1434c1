package bybit

import (
	bybit_api "github.com/bybit-exchange/bybit.go.api"
)

// Client wraps the Bybit API client for the public market-data endpoints the
// planner needs: klines and last-traded prices. No trading surface is exposed.
type Client struct {
	httpClient *bybit_api.Client
	testnet    bool
}

// Config holds the configuration for the Bybit client. API credentials are
// optional for public market data but raise the rate limits when present.
type Config struct {
	APIKey    string
	APISecret string
	Testnet   bool
}

// NewClient creates a new Bybit market-data client
func NewClient(config Config) *Client {
	baseURL := bybit_api.MAINNET
	if config.Testnet {
		baseURL = bybit_api.TESTNET
	}

	httpClient := bybit_api.NewBybitHttpClient(
		config.APIKey,
		config.APISecret,
		bybit_api.WithBaseURL(baseURL),
	)

	return &Client{
		httpClient: httpClient,
		testnet:    config.Testnet,
	}
}

// IsTestnet returns whether the client is configured for testnet
func (c *Client) IsTestnet() bool {
	return c.testnet
}
