package usecase

import (
	"context"
	"strings"

	"StockSignal/internal/domain/models"
	"StockSignal/pkg/logger"
)

// Placeholder is the terminal safety net: the one summary that requires no
// provider at all.
const Placeholder = "No data available for this stock at the moment."

// GenericSignalType replaces the AI's signal label whenever a fallback
// summary is adopted; a non-AI summary carries no directional signal.
const GenericSignalType = "News Summary"

// failureMarkers are literal strings the AI emits when it had nothing useful
// to say; a summary containing one is treated like an empty summary.
var failureMarkers = []string{
	"Unable to generate summary",
	"No summary",
}

// FallbackInput carries the state the coordinator decides on.
type FallbackInput struct {
	RawQuery    string // original user text, before ticker normalization
	Ticker      string
	NewsContent string // formatted article block fed to the AI
	Base        models.AISummary
	AIFailed    bool // the summarizer call failed at the transport level
}

// FallbackCoordinator guarantees every response carries a non-empty,
// best-effort summary, trying the cheapest reliable source first.
//
// The chain is expressed as an ordered slice of candidates evaluated
// sequentially with short-circuit on first success, so the policy reads as
// data and reorders without touching call sites.
type FallbackCoordinator struct {
	ai       Summarizer
	snippets SnippetSource
	overview ProfileSource // fundamentals description (Alpha Vantage)
	profile  ProfileSource // company profile (Finnhub)
	log      *logger.Logger
	metrics  Metrics
}

func NewFallbackCoordinator(ai Summarizer, snippets SnippetSource, overview, profile ProfileSource, log *logger.Logger, metrics Metrics) *FallbackCoordinator {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &FallbackCoordinator{
		ai:       ai,
		snippets: snippets,
		overview: overview,
		profile:  profile,
		log:      log,
		metrics:  metrics,
	}
}

type candidate struct {
	tag   models.Provenance
	fetch func(ctx context.Context) (string, error)
}

// Finalize applies the fallback policy and returns the summary to ship plus
// its provenance. It never fails; the worst case is the placeholder summary
// tagged "none".
func (f *FallbackCoordinator) Finalize(ctx context.Context, in FallbackInput) (models.AISummary, models.Provenance) {
	out := in.Base
	prov := models.ProvOpenRouter
	if in.AIFailed {
		prov = models.ProvOpenRouterError
		out.Summary = ""
	}

	// Multi-word input means the user typed a company name; those are
	// frequently mis-resolved, so a fresh web search anchored on the
	// resolved ticker is trusted over the AI output even when that output
	// looks valid. Tunable policy, kept as observed in production.
	multiWord := len(strings.Fields(strings.TrimSpace(in.RawQuery))) > 1

	if multiWord || isWeak(out.Summary) {
		if text, tag, ok := f.try(ctx, f.searchCandidates(in)); ok {
			out.Summary = text
			prov = tag
		}
	}

	if out.Summary == "" {
		if text, tag, ok := f.try(ctx, f.profileCandidates(in)); ok {
			out.Summary = text
			prov = tag
		}
	}

	// Terminal safety net: must not fail.
	if out.Summary == "" {
		out.Summary = Placeholder
		prov = models.ProvNone
	}

	if prov != models.ProvOpenRouter && prov != models.ProvOpenRouterError {
		out.SignalType = GenericSignalType
		out.Impact = models.ImpactNeutral
	}

	return out, prov
}

// searchCandidates is the two-step fallback shared by the multi-word and
// generic-failure branches: web-search snippet, then the simplified re-ask.
func (f *FallbackCoordinator) searchCandidates(in FallbackInput) []candidate {
	return []candidate{
		{
			tag: models.ProvSerper,
			fetch: func(ctx context.Context) (string, error) {
				return f.snippets.Snippet(ctx, in.Ticker+" stock news")
			},
		},
		{
			tag: models.ProvOpenRouterFallback,
			fetch: func(ctx context.Context) (string, error) {
				if in.NewsContent == "" {
					return "", nil
				}
				return f.ai.Reask(ctx, in.NewsContent)
			},
		},
	}
}

// profileCandidates is the final market-data net: fundamentals overview
// first, company profile second.
func (f *FallbackCoordinator) profileCandidates(in FallbackInput) []candidate {
	return []candidate{
		{
			tag: models.ProvAlphaVantage,
			fetch: func(ctx context.Context) (string, error) {
				return f.overview.Describe(ctx, in.Ticker)
			},
		},
		{
			tag: models.ProvFinnhub,
			fetch: func(ctx context.Context) (string, error) {
				return f.profile.Describe(ctx, in.Ticker)
			},
		},
	}
}

// try evaluates candidates in order; each provider is attempted at most once
// and failures advance silently to the next candidate.
func (f *FallbackCoordinator) try(ctx context.Context, candidates []candidate) (string, models.Provenance, bool) {
	for _, c := range candidates {
		text, err := c.fetch(ctx)
		if err != nil {
			f.metrics.RecordProviderRequest(string(c.tag), "error")
			f.log.Warn("fallback source failed",
				logger.String("source", string(c.tag)),
				logger.Error(err),
			)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			f.metrics.RecordProviderRequest(string(c.tag), "empty")
			continue
		}
		f.metrics.RecordProviderRequest(string(c.tag), "ok")
		return text, c.tag, true
	}
	return "", "", false
}

func isWeak(summary string) bool {
	if summary == "" {
		return true
	}
	for _, marker := range failureMarkers {
		if strings.Contains(summary, marker) {
			return true
		}
	}
	return false
}
