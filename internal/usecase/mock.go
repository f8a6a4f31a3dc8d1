package usecase

import (
	"fmt"
	"time"

	"StockSignal/internal/domain/models"
)

// BuildMockInsight returns the deterministic canned insight served when
// provider credentials are absent. Content mirrors a typical positive
// earnings cycle so the consuming UI has something representative to render.
func BuildMockInsight(stockName string) models.StockInsight {
	now := time.Now()

	return models.StockInsight{
		Summary:    fmt.Sprintf("%s shows positive momentum due to strong quarterly earnings and new product announcements. Analysts have upgraded their price targets.", stockName),
		SignalType: "Earnings Beat & Product Launch",
		Impact:     models.ImpactUp,
		BuyAnalysis: "This appears to be a good time to buy as the company has shown strong financial performance and positive market sentiment. " +
			"The recent product announcements could drive further growth.",
		SellAnalysis: "Selling is not recommended at this time as the stock shows strong upward momentum and positive catalysts that could drive further price appreciation.",
		FactCheck: models.FactCheck{
			VerifiedClaims: []string{
				"The company reported earnings above analyst expectations",
				"New product line was announced on the specified date",
				"Multiple analysts have upgraded their price targets",
			},
			UncertainClaims: []string{
				"Long-term impact of new products on revenue",
				"Competitive response to the new product announcements",
			},
		},
		RelevanceScore: 100,
		StockName:      stockName,
		IsMockData:     true,
		Provenance:     models.ProvNone,
		News: []models.NewsRef{
			{
				Title:       fmt.Sprintf("%s Reports Record Q3 Earnings, Beats Analyst Expectations", stockName),
				URL:         "https://example.com/news/1",
				Source:      models.NewsSource{Name: "Financial Times"},
				PublishedAt: now,
			},
			{
				Title:       fmt.Sprintf("%s Announces New Product Line, Shares Jump 5%%", stockName),
				URL:         "https://example.com/news/2",
				Source:      models.NewsSource{Name: "Bloomberg"},
				PublishedAt: now.Add(-24 * time.Hour),
			},
			{
				Title:       fmt.Sprintf("Analysts Upgrade %s Following Strong Performance", stockName),
				URL:         "https://example.com/news/3",
				Source:      models.NewsSource{Name: "CNBC"},
				PublishedAt: now.Add(-48 * time.Hour),
			},
		},
	}
}

// BuildDemoInsight is the last-resort payload when even the mock endpoint
// cannot be reached.
func BuildDemoInsight(stockName string) models.StockInsight {
	now := time.Now()

	return models.StockInsight{
		Summary:      fmt.Sprintf("Analysis for %s is currently unavailable. Using demo data.", stockName),
		SignalType:   "Demo Data",
		Impact:       models.ImpactNeutral,
		BuyAnalysis:  "This is demo data. In a real scenario, you would see an actual buy analysis here based on recent news.",
		SellAnalysis: "This is demo data. In a real scenario, you would see an actual sell analysis here based on recent news.",
		FactCheck: models.FactCheck{
			VerifiedClaims:  []string{"This is a demo claim", "API keys are required for real data"},
			UncertainClaims: []string{"This data is not based on real news"},
		},
		RelevanceScore: 100,
		StockName:      stockName,
		IsMockData:     true,
		Provenance:     models.ProvNone,
		News: []models.NewsRef{
			{
				Title:       fmt.Sprintf("Demo News Article about %s", stockName),
				URL:         "https://example.com/news/1",
				Source:      models.NewsSource{Name: "Demo Source"},
				PublishedAt: now,
			},
			{
				Title:       fmt.Sprintf("Another Demo Article about %s", stockName),
				URL:         "https://example.com/news/2",
				Source:      models.NewsSource{Name: "Demo Source 2"},
				PublishedAt: now.Add(-24 * time.Hour),
			},
		},
	}
}
