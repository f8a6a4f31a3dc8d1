package usecase

import (
	"testing"

	"StockSignal/internal/domain/models"
)

func TestFilterRelevantKeepsMatchingArticles(t *testing.T) {
	articles := []models.NewsArticle{
		{Title: "Tesla delivers record number of vehicles", Description: "Q3 deliveries beat estimates"},
		{Title: "Ford announces new pickup", Description: "The rival automaker unveiled a truck"},
		{Title: "EV demand surges", Description: "Tesla and others gain share"},
	}

	got := FilterRelevant(articles, "Tesla")
	if len(got) != 2 {
		t.Fatalf("kept %d articles, want 2", len(got))
	}
	if got[0].Title != articles[0].Title || got[1].Title != articles[2].Title {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestFilterRelevantMatchesAnyToken(t *testing.T) {
	articles := []models.NewsArticle{
		{Title: "Motors sector rallies", Description: ""},
		{Title: "Unrelated crypto news", Description: "bitcoin up"},
	}

	got := FilterRelevant(articles, "Tata Motors")
	if len(got) != 1 {
		t.Fatalf("kept %d articles, want 1", len(got))
	}
	if got[0].Title != "Motors sector rallies" {
		t.Fatalf("kept wrong article: %q", got[0].Title)
	}
}

func TestFilterRelevantCaseInsensitive(t *testing.T) {
	articles := []models.NewsArticle{
		{Title: "AAPL hits all-time high", Description: ""},
	}
	if got := FilterRelevant(articles, "aapl"); len(got) != 1 {
		t.Fatalf("case-insensitive match failed")
	}
}

func TestFilterRelevantIdempotent(t *testing.T) {
	articles := []models.NewsArticle{
		{Title: "Tesla Reports Record Deliveries", Description: ""},
		{Title: "Ford Motor Co earnings", Description: "no mention here"},
	}

	once := FilterRelevant(articles, "Tesla")
	twice := FilterRelevant(once, "Tesla")
	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("second pass changed element %d", i)
		}
	}
}

func TestFilterRelevantEmpty(t *testing.T) {
	if got := FilterRelevant(nil, "AAPL"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	articles := []models.NewsArticle{{Title: "Oil prices fall", Description: "OPEC output"}}
	if got := FilterRelevant(articles, "NVDA"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
