// Package alphavantage implements the fundamentals/overview fallback source.
package alphavantage

import (
	"context"
	"errors"
	"strings"
	"time"

	"StockSignal/internal/provider"
	xhttp "StockSignal/pkg/http"
)

const providerName = "alphavantage"

// Client reads the free-text company description from the Alpha Vantage
// OVERVIEW function.
type Client struct {
	apiKey  string
	baseURL string
	http    *xhttp.Client
}

// New creates an Alpha Vantage client.
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	opts := []xhttp.ClientOption{}
	if timeout > 0 {
		opts = append(opts, xhttp.WithTimeout(timeout))
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    xhttp.NewClient(opts...),
	}
}

type overviewResponse struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Describe returns the company description for ticker, or "" when Alpha
// Vantage has no overview for it (the API answers unknown symbols with an
// empty object rather than an error status).
func (c *Client) Describe(ctx context.Context, ticker string) (string, error) {
	if c.apiKey == "" {
		return "", provider.ErrNotConfigured
	}

	var raw overviewResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/query",
		QueryParams: map[string]string{
			"function": "OVERVIEW",
			"symbol":   ticker,
			"apikey":   c.apiKey,
		},
	}, &raw)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return "", &provider.Error{Provider: providerName, Status: se.Status, Err: se}
		}
		return "", provider.Errorf(providerName, err)
	}

	return strings.TrimSpace(raw.Description), nil
}
