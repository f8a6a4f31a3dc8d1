package di

import (
	"fmt"

	"StockSignal/internal/catalog"
	"StockSignal/internal/handler/api"
	"StockSignal/internal/provider/alphavantage"
	"StockSignal/internal/provider/finnhub"
	"StockSignal/internal/provider/newsapi"
	"StockSignal/internal/provider/openrouter"
	"StockSignal/internal/provider/serper"
	"StockSignal/internal/resolver"
	"StockSignal/internal/usecase"
	"StockSignal/pkg/cache"
	"StockSignal/pkg/config"
	xhttp "StockSignal/pkg/http"
	"StockSignal/pkg/logger"
	"StockSignal/pkg/metrics"
	"StockSignal/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache creates the news cache: layered memory+Redis when Redis is
// configured, memory-only otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	memOpts := []cache.MemoryOption{}
	if cfg.Cache.MemoryMaxSize > 0 {
		memOpts = append(memOpts, cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize))
	}

	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(memOpts...), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
		cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc, memOpts...), nil
}

// ProvideMetrics creates the Prometheus recorder.
func ProvideMetrics() usecase.Metrics {
	return metrics.New()
}

// ProvideCatalog loads the static reference catalog.
func ProvideCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// ProvideResolver creates the symbol resolver.
func ProvideResolver(c *catalog.Catalog) *resolver.Resolver {
	return resolver.New(c)
}

// ProvideNewsSource creates the NewsAPI retriever.
func ProvideNewsSource(cfg *config.Config, cacheSvc cache.Service) usecase.NewsSource {
	opts := []newsapi.Option{
		newsapi.WithPageSize(cfg.NewsAPI.PageSize),
		newsapi.WithCacheTTL(cfg.NewsAPI.CacheTTL),
	}
	if cfg.NewsAPI.Timeout > 0 {
		opts = append(opts, newsapi.WithTimeout(cfg.NewsAPI.Timeout))
	}
	return newsapi.New(cfg.NewsAPI.APIKey, cfg.NewsAPI.BaseURL, cacheSvc, opts...)
}

// ProvideSummarizer creates the OpenRouter summarizer.
func ProvideSummarizer(cfg *config.Config) usecase.Summarizer {
	return openrouter.New(openrouter.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		BaseURL:     cfg.OpenRouter.BaseURL,
		Model:       cfg.OpenRouter.Model,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		Referer:     cfg.OpenRouter.Referer,
		Title:       cfg.OpenRouter.Title,
	})
}

// ProvideFallbackCoordinator wires the fallback chain sources.
func ProvideFallbackCoordinator(cfg *config.Config, ai usecase.Summarizer, l *logger.Logger, m usecase.Metrics) *usecase.FallbackCoordinator {
	snippets := serper.New(cfg.Serper.APIKey, cfg.Serper.BaseURL, cfg.Serper.Timeout)
	overview := alphavantage.New(cfg.AlphaVantage.APIKey, cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.Timeout)
	profile := finnhub.New(cfg.Finnhub.APIKey)
	return usecase.NewFallbackCoordinator(ai, snippets, overview, profile, l, m)
}

// ProvidePipeline creates the insight pipeline.
func ProvidePipeline(
	res *resolver.Resolver,
	news usecase.NewsSource,
	ai usecase.Summarizer,
	fb *usecase.FallbackCoordinator,
	l *logger.Logger,
	m usecase.Metrics,
) *usecase.InsightPipeline {
	return usecase.NewInsightPipeline(res, news, ai, fb, l, m)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(cfg *config.Config, l *logger.Logger, p *usecase.InsightPipeline) xhttp.Handler {
	return api.NewInsightEchoHandler(l, p, api.Config{
		CredentialsAvailable: cfg.CredentialsAvailable(),
		PublicBaseURL:        cfg.PublicBaseURL,
		MockDelay:            cfg.Mock.Delay,
	})
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, h xhttp.Handler, cacheSvc cache.Service) *server.App {
	var closers []server.Closer
	if c, ok := cacheSvc.(server.Closer); ok {
		closers = append(closers, c)
	}
	return server.New(cfg, l, h, closers...)
}
