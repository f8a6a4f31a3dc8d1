package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"StockSignal/internal/domain/models"
	"StockSignal/internal/resolver"
	"StockSignal/pkg/logger"
)

// maxArticles caps how many filtered articles feed the AI prompt and the
// response news list.
const maxArticles = 5

// InsightPipeline is the sequential chain behind GET /insight: resolve the
// subject, fetch and filter news, summarize, run the fallback chain, and
// assemble the response. One request is one strictly sequential pass; there
// is no retry, no concurrent provider racing and no shared mutable state.
type InsightPipeline struct {
	resolver *resolver.Resolver
	news     NewsSource
	ai       Summarizer
	fallback *FallbackCoordinator
	log      *logger.Logger
	metrics  Metrics
}

func NewInsightPipeline(
	res *resolver.Resolver,
	news NewsSource,
	ai Summarizer,
	fallback *FallbackCoordinator,
	log *logger.Logger,
	metrics Metrics,
) *InsightPipeline {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &InsightPipeline{
		resolver: res,
		news:     news,
		ai:       ai,
		fallback: fallback,
		log:      log,
		metrics:  metrics,
	}
}

// GetInsight runs the full pipeline for one raw user query. It always
// produces an insight; degraded results are provenance-tagged, never errors.
func (p *InsightPipeline) GetInsight(ctx context.Context, rawQuery string) models.StockInsight {
	start := time.Now()

	sub := p.resolver.Resolve(rawQuery)

	articles := p.fetchRelevantNews(ctx, sub)
	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	newsContent := formatArticles(articles)

	base, aiFailed := p.analyze(ctx, sub.Ticker, newsContent, len(articles) > 0)

	final, prov := p.fallback.Finalize(ctx, FallbackInput{
		RawQuery:    rawQuery,
		Ticker:      sub.Ticker,
		NewsContent: newsContent,
		Base:        base,
		AIFailed:    aiFailed,
	})

	p.metrics.RecordProvenance(string(prov))
	p.metrics.RecordStageLatency("pipeline", time.Since(start).Seconds())
	p.log.Info("insight assembled",
		logger.String("ticker", sub.Ticker),
		logger.String("provenance", string(prov)),
		logger.Int("articles", len(articles)),
		logger.Duration("took", time.Since(start)),
	)

	return assemble(sub, final, articles, prov)
}

// fetchRelevantNews searches by ticker and applies the relevance gate; when
// that yields nothing and a company name is known, it retries once with the
// name as the alternate subject. Provider failures (including a missing
// credential) degrade to an empty list: the fallback chain owns recovery.
func (p *InsightPipeline) fetchRelevantNews(ctx context.Context, sub models.ResolvedSubject) []models.NewsArticle {
	relevant := p.searchAndFilter(ctx, sub.Ticker)
	if len(relevant) == 0 && sub.CompanyName != "" {
		relevant = p.searchAndFilter(ctx, sub.CompanyName)
	}
	return relevant
}

func (p *InsightPipeline) searchAndFilter(ctx context.Context, subject string) []models.NewsArticle {
	articles, err := p.news.Search(ctx, subject)
	if err != nil {
		p.metrics.RecordProviderRequest("newsapi", "error")
		p.log.Warn("news search failed",
			logger.String("subject", subject),
			logger.Error(err),
		)
		return nil
	}
	p.metrics.RecordProviderRequest("newsapi", "ok")
	return FilterRelevant(articles, subject)
}

// analyze calls the summarizer unless there is nothing to summarize.
// Transport failure becomes the empty-summary sentinel with aiFailed set so
// the coordinator can tag provenance accordingly.
func (p *InsightPipeline) analyze(ctx context.Context, ticker, newsContent string, haveNews bool) (models.AISummary, bool) {
	if !haveNews {
		return models.EmptyAISummary(), false
	}

	summary, err := p.ai.Analyze(ctx, ticker, newsContent)
	if err != nil {
		p.metrics.RecordProviderRequest("openrouter", "error")
		p.log.Warn("ai analysis failed", logger.Error(err))
		return models.EmptyAISummary(), true
	}
	p.metrics.RecordProviderRequest("openrouter", "ok")
	return summary, false
}

// formatArticles renders the article block fed to the AI prompt.
func formatArticles(articles []models.NewsArticle) string {
	if len(articles) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, a := range articles {
		desc := a.Description
		if desc == "" {
			desc = "No description available"
		}
		fmt.Fprintf(&sb, "Article %d: %s\nSource: %s\nDate: %s\n%s\nURL: %s\n---",
			i+1, a.Title, a.SourceName, a.PublishedAt.Format("1/2/2006"), desc, a.URL)
		if i < len(articles)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// assemble merges resolver output, the final summary and the sliced news
// list into the response object. This stage cannot fail.
func assemble(sub models.ResolvedSubject, summary models.AISummary, articles []models.NewsArticle, prov models.Provenance) models.StockInsight {
	refs := make([]models.NewsRef, 0, len(articles))
	for _, a := range articles {
		refs = append(refs, models.NewsRef{
			Title:       a.Title,
			URL:         a.URL,
			Source:      models.NewsSource{Name: a.SourceName},
			PublishedAt: a.PublishedAt,
		})
	}

	return models.StockInsight{
		Summary:        summary.Summary,
		SignalType:     summary.SignalType,
		Impact:         summary.Impact,
		BuyAnalysis:    summary.BuyAnalysis,
		SellAnalysis:   summary.SellAnalysis,
		FactCheck:      summary.FactCheck,
		RelevanceScore: summary.RelevanceScore,
		StockName:      sub.Ticker,
		News:           refs,
		Provenance:     prov,
	}
}
