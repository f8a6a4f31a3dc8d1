package resolver

import (
	"strings"

	"StockSignal/internal/catalog"
	"StockSignal/internal/domain/models"
)

// Resolver maps free-text user queries to canonical tickers using the static
// reference catalog plus the hand-maintained alias table. Resolution always
// succeeds syntactically; whether the ticker actually exists is discovered
// later by empty news results.
type Resolver struct {
	catalog *catalog.Catalog
	aliases map[string]string
}

func New(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c, aliases: catalog.Aliases}
}

// NewWithAliases injects an explicit alias table, for fixture-driven tests.
func NewWithAliases(c *catalog.Catalog, aliases map[string]string) *Resolver {
	return &Resolver{catalog: c, aliases: aliases}
}

// Resolve turns raw user text into a ResolvedSubject. Precedence: alias
// table, catalog display-name match, then the upper-cased input taken as the
// ticker directly.
func (r *Resolver) Resolve(raw string) models.ResolvedSubject {
	q := strings.ToLower(strings.TrimSpace(raw))

	var ticker string
	if t, ok := r.aliases[q]; ok {
		ticker = t
	} else if ref, ok := r.catalog.ByName(q); ok {
		ticker = ref.Symbol
	} else {
		ticker = strings.ToUpper(q)
	}

	sub := models.ResolvedSubject{Ticker: ticker}
	if ref, ok := r.catalog.BySymbol(ticker); ok {
		sub.CompanyName = ref.Name
	}
	return sub
}
