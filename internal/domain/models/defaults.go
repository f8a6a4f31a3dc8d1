package models

// Placeholder values substituted for missing or malformed summary fields.
// The summary itself is NOT defaulted here: an empty Summary is the sentinel
// the fallback coordinator keys on.
const (
	DefaultSignalType   = "Unknown"
	DefaultBuyAnalysis  = "No buy analysis available"
	DefaultSellAnalysis = "No sell analysis available"
)

// DefaultFactCheck returns the placeholder fact-check block.
func DefaultFactCheck() FactCheck {
	return FactCheck{
		VerifiedClaims:  []string{"No verified claims available"},
		UncertainClaims: []string{"No uncertain claims available"},
	}
}

// EmptyAISummary is the sentinel "no result yet" state: every field carries
// its placeholder except Summary, which stays empty.
func EmptyAISummary() AISummary {
	return AISummary{
		Summary:      "",
		SignalType:   DefaultSignalType,
		Impact:       ImpactNeutral,
		BuyAnalysis:  DefaultBuyAnalysis,
		SellAnalysis: DefaultSellAnalysis,
		FactCheck:    DefaultFactCheck(),
	}
}
