package usecase

import (
	"context"
	"errors"
	"testing"

	"StockSignal/internal/domain/models"
	"StockSignal/pkg/logger"
)

type stubSummarizer struct {
	reask    string
	reaskErr error
	calls    int
}

func (s *stubSummarizer) Analyze(ctx context.Context, subject, newsContent string) (models.AISummary, error) {
	return models.EmptyAISummary(), nil
}

func (s *stubSummarizer) Reask(ctx context.Context, newsContent string) (string, error) {
	s.calls++
	return s.reask, s.reaskErr
}

type stubSnippets struct {
	text  string
	err   error
	calls int
}

func (s *stubSnippets) Snippet(ctx context.Context, query string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubProfile struct {
	text  string
	err   error
	calls int
}

func (s *stubProfile) Describe(ctx context.Context, ticker string) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newCoordinator(t *testing.T, ai *stubSummarizer, sn *stubSnippets, ov, pr *stubProfile) *FallbackCoordinator {
	t.Helper()
	return NewFallbackCoordinator(ai, sn, ov, pr, newTestLogger(t), nil)
}

func TestFinalizeKeepsGoodAISummary(t *testing.T) {
	sn := &stubSnippets{text: "should not be used"}
	fc := newCoordinator(t, &stubSummarizer{}, sn, &stubProfile{}, &stubProfile{})

	base := models.AISummary{Summary: "Shares rallied on strong guidance.", SignalType: "Bullish Momentum", Impact: models.ImpactUp}
	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery: "AAPL",
		Ticker:   "AAPL",
		Base:     base,
	})

	if prov != models.ProvOpenRouter {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvOpenRouter)
	}
	if out.Summary != base.Summary {
		t.Fatalf("summary = %q, want original", out.Summary)
	}
	if out.SignalType != "Bullish Momentum" || out.Impact != models.ImpactUp {
		t.Fatalf("signal fields rewritten: %+v", out)
	}
	if sn.calls != 0 {
		t.Fatalf("snippet source called %d times for a single-word query", sn.calls)
	}
}

func TestFinalizeMultiWordPrefersSearchOverAI(t *testing.T) {
	sn := &stubSnippets{text: "Tata Motors reported record EV deliveries this quarter."}
	fc := newCoordinator(t, &stubSummarizer{}, sn, &stubProfile{}, &stubProfile{})

	base := models.AISummary{Summary: "A perfectly valid AI summary.", SignalType: "Earnings Beat", Impact: models.ImpactUp}
	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery: "tata motors",
		Ticker:   "TATAMOTORS.NS",
		Base:     base,
	})

	if prov != models.ProvSerper {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvSerper)
	}
	if out.Summary != sn.text {
		t.Fatalf("summary = %q, want snippet", out.Summary)
	}
	if out.SignalType != GenericSignalType {
		t.Fatalf("signal type = %q, want %q", out.SignalType, GenericSignalType)
	}
	if out.Impact != models.ImpactNeutral {
		t.Fatalf("impact = %q, want neutral", out.Impact)
	}
}

func TestFinalizeMultiWordKeepsAIWhenSearchFails(t *testing.T) {
	ai := &stubSummarizer{reaskErr: errors.New("rate limited")}
	sn := &stubSnippets{err: errors.New("serper down")}
	fc := newCoordinator(t, ai, sn, &stubProfile{}, &stubProfile{})

	base := models.AISummary{Summary: "A perfectly valid AI summary.", SignalType: "Earnings Beat", Impact: models.ImpactUp}
	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery:    "tata motors",
		Ticker:      "TATAMOTORS.NS",
		NewsContent: "Article 1: something happened",
		Base:        base,
	})

	if prov != models.ProvOpenRouter {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvOpenRouter)
	}
	if out.Summary != base.Summary {
		t.Fatalf("summary = %q, want AI output retained", out.Summary)
	}
	if out.SignalType != "Earnings Beat" {
		t.Fatalf("signal type = %q, should be untouched", out.SignalType)
	}
}

func TestFinalizeFailureMarkerTriggersReask(t *testing.T) {
	ai := &stubSummarizer{reask: "Two sentences about the stock."}
	sn := &stubSnippets{}
	fc := newCoordinator(t, ai, sn, &stubProfile{}, &stubProfile{})

	base := models.AISummary{Summary: "Unable to generate summary for these articles."}
	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery:    "NVDA",
		Ticker:      "NVDA",
		NewsContent: "Article 1: chips",
		Base:        base,
	})

	if prov != models.ProvOpenRouterFallback {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvOpenRouterFallback)
	}
	if out.Summary != ai.reask {
		t.Fatalf("summary = %q, want reask output", out.Summary)
	}
	if ai.calls != 1 || sn.calls != 1 {
		t.Fatalf("calls: reask=%d snippet=%d, want 1 each", ai.calls, sn.calls)
	}
}

func TestFinalizeReaskSkippedWithoutNews(t *testing.T) {
	ai := &stubSummarizer{reask: "should not run"}
	ov := &stubProfile{text: "Acme Corp designs widgets for industrial clients."}
	fc := newCoordinator(t, ai, &stubSnippets{}, ov, &stubProfile{})

	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery: "ACME",
		Ticker:   "ACME",
		Base:     models.EmptyAISummary(),
	})

	if ai.calls != 0 {
		t.Fatalf("reask ran with no news content")
	}
	if prov != models.ProvAlphaVantage {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvAlphaVantage)
	}
	if out.Summary != ov.text {
		t.Fatalf("summary = %q, want overview", out.Summary)
	}
}

func TestFinalizeProfileOrderOverviewFirst(t *testing.T) {
	ov := &stubProfile{err: errors.New("premium endpoint")}
	pr := &stubProfile{text: "Acme Corp operates in the machinery industry."}
	fc := newCoordinator(t, &stubSummarizer{}, &stubSnippets{}, ov, pr)

	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery: "ACME",
		Ticker:   "ACME",
		Base:     models.EmptyAISummary(),
	})

	if prov != models.ProvFinnhub {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvFinnhub)
	}
	if out.Summary != pr.text {
		t.Fatalf("summary = %q, want profile", out.Summary)
	}
	if ov.calls != 1 || pr.calls != 1 {
		t.Fatalf("calls: overview=%d profile=%d, want 1 each", ov.calls, pr.calls)
	}
}

func TestFinalizeAllSourcesFail(t *testing.T) {
	fc := newCoordinator(t,
		&stubSummarizer{reaskErr: errors.New("down")},
		&stubSnippets{err: errors.New("down")},
		&stubProfile{err: errors.New("down")},
		&stubProfile{err: errors.New("down")},
	)

	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery:    "ZZZZ",
		Ticker:      "ZZZZ",
		NewsContent: "Article 1: nothing",
		AIFailed:    true,
		Base:        models.EmptyAISummary(),
	})

	if prov != models.ProvNone {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvNone)
	}
	if out.Summary != Placeholder {
		t.Fatalf("summary = %q, want placeholder", out.Summary)
	}
	if out.SignalType != GenericSignalType || out.Impact != models.ImpactNeutral {
		t.Fatalf("terminal fields not normalized: %+v", out)
	}
}

func TestFinalizeAIFailureDiscardsBase(t *testing.T) {
	sn := &stubSnippets{err: errors.New("down")}
	ov := &stubProfile{err: errors.New("down")}
	pr := &stubProfile{err: errors.New("down")}
	fc := newCoordinator(t, &stubSummarizer{reaskErr: errors.New("down")}, sn, ov, pr)

	out, prov := fc.Finalize(context.Background(), FallbackInput{
		RawQuery: "AAPL",
		Ticker:   "AAPL",
		AIFailed: true,
		Base:     models.AISummary{Summary: "stale text that must not leak"},
	})

	if out.Summary != Placeholder {
		t.Fatalf("summary = %q, failed AI output leaked", out.Summary)
	}
	if prov != models.ProvNone {
		t.Fatalf("provenance = %q, want %q", prov, models.ProvNone)
	}
}

func TestIsWeak(t *testing.T) {
	cases := []struct {
		summary string
		want    bool
	}{
		{"", true},
		{"Unable to generate summary", true},
		{"No summary available", true},
		{"Shares climbed after earnings.", false},
	}
	for _, tc := range cases {
		if got := isWeak(tc.summary); got != tc.want {
			t.Fatalf("isWeak(%q) = %v, want %v", tc.summary, got, tc.want)
		}
	}
}
