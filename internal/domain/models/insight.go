package models

import "time"

// NewsArticle is one article as returned by the news search provider.
// Articles are value objects: filtered and sliced downstream, never mutated.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	SourceName  string    `json:"sourceName"`
}

// NewsRef is the reduced article shape embedded in a StockInsight.
type NewsRef struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Source      NewsSource `json:"source"`
	PublishedAt time.Time  `json:"publishedAt"`
}

type NewsSource struct {
	Name string `json:"name"`
}

// ResolvedSubject is the Symbol Resolver output. CompanyName is optional and
// serves as the alternate news subject when ticker-based search comes up empty.
type ResolvedSubject struct {
	Ticker      string
	CompanyName string
}

// FactCheck splits model claims into verified and uncertain buckets.
type FactCheck struct {
	VerifiedClaims  []string `json:"verifiedClaims"`
	UncertainClaims []string `json:"uncertainClaims"`
}

// AISummary is the structured result of one chat-completion analysis.
// Every field has a defined default so a partial parse never leaves a hole;
// an empty Summary is the sentinel that triggers the fallback chain.
type AISummary struct {
	Summary        string    `json:"summary"`
	SignalType     string    `json:"signalType"`
	Impact         Impact    `json:"impact"`
	BuyAnalysis    string    `json:"buyAnalysis"`
	SellAnalysis   string    `json:"sellAnalysis"`
	FactCheck      FactCheck `json:"factCheck"`
	RelevanceScore int       `json:"relevanceScore"`
}

// StockInsight is the assembled response for one query.
type StockInsight struct {
	Summary        string     `json:"summary"`
	SignalType     string     `json:"signalType"`
	Impact         Impact     `json:"impact"`
	BuyAnalysis    string     `json:"buyAnalysis"`
	SellAnalysis   string     `json:"sellAnalysis"`
	FactCheck      FactCheck  `json:"factCheck"`
	RelevanceScore int        `json:"relevanceScore"`
	StockName      string     `json:"stockName"`
	News           []NewsRef  `json:"news"`
	Provenance     Provenance `json:"summarySource"`
	IsMockData     bool       `json:"isMockData,omitempty"`
}
