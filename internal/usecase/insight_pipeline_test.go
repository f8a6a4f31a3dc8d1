package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"StockSignal/internal/catalog"
	"StockSignal/internal/domain/models"
	"StockSignal/internal/resolver"
)

type stubNewsSource struct {
	bySubject map[string][]models.NewsArticle
	err       error
	subjects  []string
}

func (s *stubNewsSource) Search(ctx context.Context, subject string) ([]models.NewsArticle, error) {
	s.subjects = append(s.subjects, subject)
	if s.err != nil {
		return nil, s.err
	}
	return s.bySubject[subject], nil
}

type recordingSummarizer struct {
	summary     models.AISummary
	err         error
	newsContent string
	calls       int
}

func (s *recordingSummarizer) Analyze(ctx context.Context, subject, newsContent string) (models.AISummary, error) {
	s.calls++
	s.newsContent = newsContent
	return s.summary, s.err
}

func (s *recordingSummarizer) Reask(ctx context.Context, newsContent string) (string, error) {
	return "", errors.New("not configured")
}

func testResolver() *resolver.Resolver {
	cat := catalog.New([]catalog.StockReference{
		{Name: "Apple Inc.", Symbol: "AAPL", Exchange: catalog.ExchangeNASDAQ},
	})
	return resolver.New(cat)
}

func newPipeline(t *testing.T, news NewsSource, ai Summarizer, fb *FallbackCoordinator) *InsightPipeline {
	t.Helper()
	return NewInsightPipeline(testResolver(), news, ai, fb, newTestLogger(t), nil)
}

func TestGetInsightHappyPath(t *testing.T) {
	news := &stubNewsSource{bySubject: map[string][]models.NewsArticle{
		"AAPL": {
			{Title: "AAPL hits record high", Description: "iPhone demand", URL: "https://example.com/1", SourceName: "Reuters", PublishedAt: time.Now()},
		},
	}}
	ai := &recordingSummarizer{summary: models.AISummary{
		Summary:    "Apple stock climbed on demand.",
		SignalType: "Momentum",
		Impact:     models.ImpactUp,
	}}
	fb := newCoordinator(t, &stubSummarizer{}, &stubSnippets{}, &stubProfile{}, &stubProfile{})

	got := newPipeline(t, news, ai, fb).GetInsight(context.Background(), "AAPL")

	if got.Summary != "Apple stock climbed on demand." {
		t.Fatalf("summary = %q", got.Summary)
	}
	if got.StockName != "AAPL" {
		t.Fatalf("stockName = %q", got.StockName)
	}
	if got.Provenance != models.ProvOpenRouter {
		t.Fatalf("provenance = %q", got.Provenance)
	}
	if len(got.News) != 1 || got.News[0].Source.Name != "Reuters" {
		t.Fatalf("news = %+v", got.News)
	}
	if !strings.Contains(ai.newsContent, "Article 1: AAPL hits record high") {
		t.Fatalf("prompt content = %q", ai.newsContent)
	}
}

func TestGetInsightRetriesWithCompanyName(t *testing.T) {
	news := &stubNewsSource{bySubject: map[string][]models.NewsArticle{
		"Apple Inc.": {
			{Title: "Apple unveils new chip", Description: "", URL: "https://example.com/2", SourceName: "Bloomberg", PublishedAt: time.Now()},
		},
	}}
	ai := &recordingSummarizer{summary: models.AISummary{Summary: "New chip announced.", SignalType: "Product Launch", Impact: models.ImpactUp}}
	fb := newCoordinator(t, &stubSummarizer{}, &stubSnippets{}, &stubProfile{}, &stubProfile{})

	got := newPipeline(t, news, ai, fb).GetInsight(context.Background(), "AAPL")

	if len(news.subjects) != 2 || news.subjects[0] != "AAPL" || news.subjects[1] != "Apple Inc." {
		t.Fatalf("search subjects = %v", news.subjects)
	}
	if len(got.News) != 1 {
		t.Fatalf("news = %+v", got.News)
	}
}

func TestGetInsightNoNewsSkipsAI(t *testing.T) {
	news := &stubNewsSource{}
	ai := &recordingSummarizer{}
	ov := &stubProfile{text: "Zeta Corp operates in the software industry."}
	fb := newCoordinator(t, &stubSummarizer{}, &stubSnippets{}, ov, &stubProfile{})

	got := newPipeline(t, news, ai, fb).GetInsight(context.Background(), "ZETA")

	if ai.calls != 0 {
		t.Fatalf("summarizer called with no articles")
	}
	if got.Provenance != models.ProvAlphaVantage {
		t.Fatalf("provenance = %q", got.Provenance)
	}
	if got.Summary != ov.text {
		t.Fatalf("summary = %q", got.Summary)
	}
	if got.SignalType != GenericSignalType || got.Impact != models.ImpactNeutral {
		t.Fatalf("fallback fields not normalized: %+v", got)
	}
}

func TestGetInsightNewsFailureDegrades(t *testing.T) {
	news := &stubNewsSource{err: errors.New("401 unauthorized")}
	ai := &recordingSummarizer{}
	fb := newCoordinator(t,
		&stubSummarizer{reaskErr: errors.New("down")},
		&stubSnippets{err: errors.New("down")},
		&stubProfile{err: errors.New("down")},
		&stubProfile{err: errors.New("down")},
	)

	got := newPipeline(t, news, ai, fb).GetInsight(context.Background(), "AAPL")

	if got.Summary != Placeholder {
		t.Fatalf("summary = %q, want placeholder", got.Summary)
	}
	if got.Provenance != models.ProvNone {
		t.Fatalf("provenance = %q", got.Provenance)
	}
	if len(got.News) != 0 {
		t.Fatalf("news = %+v", got.News)
	}
}

func TestGetInsightAITransportFailure(t *testing.T) {
	news := &stubNewsSource{bySubject: map[string][]models.NewsArticle{
		"AAPL": {
			{Title: "AAPL slides", Description: "profit taking", URL: "https://example.com/3", SourceName: "CNBC", PublishedAt: time.Now()},
		},
	}}
	ai := &recordingSummarizer{err: errors.New("502 bad gateway")}
	sn := &stubSnippets{text: "Apple fell two percent on Friday."}
	fb := newCoordinator(t, &stubSummarizer{}, sn, &stubProfile{}, &stubProfile{})

	got := newPipeline(t, news, ai, fb).GetInsight(context.Background(), "AAPL")

	if got.Provenance != models.ProvSerper {
		t.Fatalf("provenance = %q", got.Provenance)
	}
	if got.Summary != sn.text {
		t.Fatalf("summary = %q", got.Summary)
	}
}

func TestFormatArticlesLayout(t *testing.T) {
	when := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	content := formatArticles([]models.NewsArticle{
		{Title: "First", Description: "", URL: "https://example.com/1", SourceName: "A", PublishedAt: when},
		{Title: "Second", Description: "details", URL: "https://example.com/2", SourceName: "B", PublishedAt: when},
	})

	if !strings.Contains(content, "Article 1: First") || !strings.Contains(content, "Article 2: Second") {
		t.Fatalf("content = %q", content)
	}
	if !strings.Contains(content, "Date: 3/7/2025") {
		t.Fatalf("date format wrong: %q", content)
	}
	if !strings.Contains(content, "No description available") {
		t.Fatalf("empty description not substituted: %q", content)
	}
	if formatArticles(nil) != "" {
		t.Fatalf("empty input must yield empty content")
	}
}
