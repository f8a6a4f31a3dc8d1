package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Exchange names match the offline catalog generator output.
const (
	ExchangeNASDAQ = "NASDAQ"
	ExchangeNSE    = "NSE"
)

// nseSuffix is the exchange suffix news and market-data providers expect
// for NSE-listed symbols.
const nseSuffix = ".NS"

// StockReference is one entry of the static ticker catalog.
type StockReference struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// Catalog is the read-only reference table loaded once at startup. It is
// constructed explicitly and injected into the resolver; nothing writes to it
// after Load returns.
type Catalog struct {
	entries  []StockReference
	byName   map[string]StockReference
	bySymbol map[string]StockReference
}

// Load reads the catalog JSON file, de-duplicates on (symbol, exchange) and
// suffixes NSE symbols so every entry carries its exchange-qualified ticker.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw []StockReference
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(raw), nil
}

// New builds a catalog from raw entries. Split out from Load so tests can
// construct fixture catalogs without touching the filesystem.
func New(raw []StockReference) *Catalog {
	c := &Catalog{
		byName:   make(map[string]StockReference, len(raw)),
		bySymbol: make(map[string]StockReference, len(raw)),
	}

	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		if r.Name == "" || r.Symbol == "" {
			continue
		}
		r.Symbol = strings.ToUpper(strings.TrimSpace(r.Symbol))
		r.Name = strings.TrimSpace(r.Name)
		if r.Exchange == ExchangeNSE && !strings.HasSuffix(r.Symbol, nseSuffix) {
			r.Symbol += nseSuffix
		}

		key := r.Symbol + "|" + r.Exchange
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		c.entries = append(c.entries, r)
		c.byName[strings.ToLower(r.Name)] = r
		c.bySymbol[r.Symbol] = r
	}

	return c
}

// ByName looks up an entry by lower-cased display name.
func (c *Catalog) ByName(name string) (StockReference, bool) {
	r, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// BySymbol looks up an entry by exchange-qualified ticker.
func (c *Catalog) BySymbol(symbol string) (StockReference, bool) {
	r, ok := c.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return r, ok
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }
