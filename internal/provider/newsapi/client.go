// Package newsapi implements the news retriever against the NewsAPI
// "everything" endpoint, with a one-hour response cache.
package newsapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StockSignal/internal/domain/models"
	"StockSignal/internal/provider"
	"StockSignal/pkg/cache"
	xhttp "StockSignal/pkg/http"
)

const providerName = "newsapi"

// financeKeywords narrows the full-text search to finance coverage; the
// subject is additionally quoted so multi-word names match as a phrase.
const financeKeywords = "(earnings OR revenue OR stock OR shares OR company OR business OR financial OR quarterly OR annual)"

// Client queries NewsAPI for recent articles about a subject.
type Client struct {
	apiKey   string
	baseURL  string
	pageSize int
	cacheTTL time.Duration
	http     *xhttp.Client
	cache    cache.Service
}

type Option func(*Client)

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = xhttp.NewClient(xhttp.WithTimeout(d))
	}
}

// WithPageSize overrides the result page size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithCacheTTL overrides the cached-response lifetime.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.cacheTTL = d
		}
	}
}

// New creates a NewsAPI client. cacheSvc may be nil to disable caching.
func New(apiKey, baseURL string, cacheSvc cache.Service, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		pageSize: 15,
		cacheTTL: time.Hour,
		http:     xhttp.NewClient(),
		cache:    cacheSvc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Search fetches recent English articles about subject, newest first.
// Results are served from cache within the TTL window; stale-within-an-hour
// news is an accepted freshness/cost trade-off.
func (c *Client) Search(ctx context.Context, subject string) ([]models.NewsArticle, error) {
	if c.apiKey == "" {
		return nil, provider.ErrNotConfigured
	}

	cacheKey := "news:" + subject
	if c.cache != nil {
		if cached, err := cache.GetTyped[[]models.NewsArticle](ctx, c.cache, cacheKey); err == nil {
			return cached, nil
		}
	}

	query := fmt.Sprintf("%q AND %s", subject, financeKeywords)

	var raw searchResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/everything",
		QueryParams: map[string]string{
			"q":        query,
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": fmt.Sprintf("%d", c.pageSize),
			"apiKey":   c.apiKey,
		},
	}, &raw)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return nil, &provider.Error{Provider: providerName, Status: se.Status, Err: se}
		}
		return nil, provider.Errorf(providerName, err)
	}

	articles := make([]models.NewsArticle, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		articles = append(articles, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
		})
	}

	if c.cache != nil {
		_ = cache.SetTyped(ctx, c.cache, cacheKey, articles, c.cacheTTL)
	}

	return articles, nil
}
