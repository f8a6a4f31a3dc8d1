// Package finnhub implements the company-profile fallback source on top of
// the official Finnhub SDK.
package finnhub

import (
	"context"
	"fmt"
	"strings"

	finnhubapi "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"StockSignal/internal/provider"
)

const providerName = "finnhub"

// Client composes a one-sentence company summary from the Finnhub
// CompanyProfile2 endpoint.
type Client struct {
	api        *finnhubapi.DefaultApiService
	configured bool
}

// New creates a Finnhub profile client.
func New(apiKey string) *Client {
	cfg := finnhubapi.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &Client{
		api:        finnhubapi.NewAPIClient(cfg).DefaultApi,
		configured: apiKey != "",
	}
}

// Describe returns "<name> operates in the <industry> industry." for ticker,
// or "" when Finnhub knows nothing about the symbol.
func (c *Client) Describe(ctx context.Context, ticker string) (string, error) {
	if !c.configured {
		return "", provider.ErrNotConfigured
	}

	// Finnhub wants the bare symbol, without the exchange suffix.
	symbol := strings.TrimSuffix(ticker, ".NS")

	profile, _, err := c.api.CompanyProfile2(ctx).Symbol(symbol).Execute()
	if err != nil {
		return "", provider.Errorf(providerName, err)
	}

	name := profile.GetName()
	industry := profile.GetFinnhubIndustry()
	if name == "" {
		return "", nil
	}
	if industry == "" {
		return fmt.Sprintf("%s is a publicly traded company.", name), nil
	}
	return fmt.Sprintf("%s operates in the %s industry.", name, industry), nil
}
