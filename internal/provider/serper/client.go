// Package serper implements the web-search-snippet fallback source.
package serper

import (
	"context"
	"errors"
	"time"

	"StockSignal/internal/provider"
	xhttp "StockSignal/pkg/http"
)

const providerName = "serper"

// Client queries the Serper search API and reads the first organic result.
type Client struct {
	apiKey  string
	baseURL string
	http    *xhttp.Client
}

// New creates a Serper client.
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

type searchResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Snippet searches for query and returns the first organic result's snippet,
// or its title when the snippet is absent. An empty string with nil error
// means "no result", which the caller treats as this source yielding nothing.
func (c *Client) Snippet(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", provider.ErrNotConfigured
	}

	var raw searchResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/search",
		Headers: map[string]string{
			"X-API-KEY":    c.apiKey,
			"Content-Type": "application/json",
		},
		Body: map[string]string{"q": query},
	}, &raw)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return "", &provider.Error{Provider: providerName, Status: se.Status, Err: se}
		}
		return "", provider.Errorf(providerName, err)
	}

	if len(raw.Organic) == 0 {
		return "", nil
	}
	first := raw.Organic[0]
	if first.Snippet != "" {
		return first.Snippet, nil
	}
	return first.Title, nil
}
