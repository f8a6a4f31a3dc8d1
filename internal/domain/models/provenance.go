package models

// Impact is the directional signal attached to a summary.
type Impact string

const (
	ImpactUp      Impact = "Up"
	ImpactDown    Impact = "Down"
	ImpactNeutral Impact = "Neutral"
)

// ParseImpact maps raw model output onto the closed Impact set,
// defaulting to Neutral for anything unrecognized.
func ParseImpact(s string) Impact {
	switch Impact(s) {
	case ImpactUp, ImpactDown, ImpactNeutral:
		return Impact(s)
	default:
		return ImpactNeutral
	}
}

// Provenance identifies which source ultimately supplied the summary.
// Exactly one tag is attached to each insight; it is diagnostic metadata
// and never feeds back into resolution logic.
type Provenance string

const (
	ProvOpenRouter         Provenance = "openrouter"
	ProvOpenRouterError    Provenance = "openrouter-error"
	ProvOpenRouterFallback Provenance = "openrouter-fallback"
	ProvSerper             Provenance = "serper"
	ProvAlphaVantage       Provenance = "alphavantage"
	ProvFinnhub            Provenance = "finnhub"
	ProvNone               Provenance = "none"
)
