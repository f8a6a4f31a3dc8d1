package usecase

import (
	"context"

	"StockSignal/internal/domain/models"
)

// NewsSource searches recent articles about a subject.
type NewsSource interface {
	Search(ctx context.Context, subject string) ([]models.NewsArticle, error)
}

// Summarizer is the chat-completion analysis endpoint.
type Summarizer interface {
	// Analyze runs the structured-JSON prompt; malformed model output is
	// absorbed into the empty-summary sentinel.
	Analyze(ctx context.Context, subject, newsContent string) (models.AISummary, error)
	// Reask re-asks with the simplified plain-prose prompt.
	Reask(ctx context.Context, newsContent string) (string, error)
}

// SnippetSource returns a one-shot web-search snippet for a query.
type SnippetSource interface {
	Snippet(ctx context.Context, query string) (string, error)
}

// ProfileSource returns a free-text company description for a ticker.
type ProfileSource interface {
	Describe(ctx context.Context, ticker string) (string, error)
}

// Metrics records pipeline observability counters.
type Metrics interface {
	RecordProviderRequest(provider, outcome string)
	RecordProvenance(provenance string)
	RecordStageLatency(stage string, seconds float64)
}

// NopMetrics is used where no recorder is wired (tests).
type NopMetrics struct{}

func (NopMetrics) RecordProviderRequest(string, string) {}
func (NopMetrics) RecordProvenance(string)              {}
func (NopMetrics) RecordStageLatency(string, float64)   {}
