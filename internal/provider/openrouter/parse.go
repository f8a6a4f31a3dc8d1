package openrouter

import (
	"encoding/json"
	"strings"

	"StockSignal/internal/domain/models"
)

// DefaultSummary replaces a summary the model parsed but left blank.
const DefaultSummary = "No summary available"

type rawSummary struct {
	Summary        string            `json:"summary"`
	SignalType     string            `json:"signalType"`
	Impact         string            `json:"impact"`
	BuyAnalysis    string            `json:"buyAnalysis"`
	SellAnalysis   string            `json:"sellAnalysis"`
	FactCheck      *models.FactCheck `json:"factCheck"`
	RelevanceScore int               `json:"relevanceScore"`
}

// ParseResponse extracts the first {...} span from raw model output (models
// may wrap JSON in prose or code fences) and fills an AISummary, substituting
// placeholders for missing fields. It never fails: unparseable input yields
// the empty-summary sentinel that drives the fallback chain.
func ParseResponse(raw string) models.AISummary {
	jsonStr := extractJSON(raw)

	var parsed rawSummary
	if jsonStr == "" || json.Unmarshal([]byte(jsonStr), &parsed) != nil {
		return models.EmptyAISummary()
	}

	out := models.AISummary{
		Summary:        parsed.Summary,
		SignalType:     parsed.SignalType,
		Impact:         models.ParseImpact(parsed.Impact),
		BuyAnalysis:    parsed.BuyAnalysis,
		SellAnalysis:   parsed.SellAnalysis,
		RelevanceScore: parsed.RelevanceScore,
	}
	if out.Summary == "" {
		out.Summary = DefaultSummary
	}
	if out.SignalType == "" {
		out.SignalType = models.DefaultSignalType
	}
	if out.BuyAnalysis == "" {
		out.BuyAnalysis = models.DefaultBuyAnalysis
	}
	if out.SellAnalysis == "" {
		out.SellAnalysis = models.DefaultSellAnalysis
	}
	if parsed.FactCheck != nil && (len(parsed.FactCheck.VerifiedClaims) > 0 || len(parsed.FactCheck.UncertainClaims) > 0) {
		out.FactCheck = *parsed.FactCheck
	} else {
		out.FactCheck = models.DefaultFactCheck()
	}

	return out
}

func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}
