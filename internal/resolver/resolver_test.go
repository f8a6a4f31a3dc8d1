package resolver

import (
	"testing"

	"StockSignal/internal/catalog"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.StockReference{
		{Name: "Apple Inc.", Symbol: "AAPL", Exchange: catalog.ExchangeNASDAQ},
		{Name: "Tata Motors Limited", Symbol: "TATAMOTORS", Exchange: catalog.ExchangeNSE},
	})
}

func TestResolveAlias(t *testing.T) {
	r := NewWithAliases(fixtureCatalog(), map[string]string{
		"tata motors": "TATAMOTORS.NS",
	})

	sub := r.Resolve("  Tata Motors ")
	if sub.Ticker != "TATAMOTORS.NS" {
		t.Fatalf("ticker = %q, want TATAMOTORS.NS", sub.Ticker)
	}
	if sub.CompanyName != "Tata Motors Limited" {
		t.Fatalf("company = %q, want catalog name", sub.CompanyName)
	}
}

func TestResolveCatalogName(t *testing.T) {
	r := NewWithAliases(fixtureCatalog(), nil)

	sub := r.Resolve("apple inc.")
	if sub.Ticker != "AAPL" {
		t.Fatalf("ticker = %q, want AAPL", sub.Ticker)
	}
	if sub.CompanyName != "Apple Inc." {
		t.Fatalf("company = %q", sub.CompanyName)
	}
}

func TestResolvePassthroughTicker(t *testing.T) {
	r := NewWithAliases(fixtureCatalog(), nil)

	sub := r.Resolve("nvda")
	if sub.Ticker != "NVDA" {
		t.Fatalf("ticker = %q, want upper-cased input", sub.Ticker)
	}
	if sub.CompanyName != "" {
		t.Fatalf("company = %q, want empty for unknown ticker", sub.CompanyName)
	}
}

func TestResolveKnownSymbolFillsName(t *testing.T) {
	r := NewWithAliases(fixtureCatalog(), nil)

	sub := r.Resolve("AAPL")
	if sub.Ticker != "AAPL" || sub.CompanyName != "Apple Inc." {
		t.Fatalf("got %+v", sub)
	}
}

func TestDefaultAliasTable(t *testing.T) {
	r := New(fixtureCatalog())
	if got := r.Resolve("tata motors").Ticker; got != "TATAMOTORS.NS" {
		t.Fatalf("ticker = %q, want TATAMOTORS.NS", got)
	}
	if got := r.Resolve("apple").Ticker; got != "AAPL" {
		t.Fatalf("ticker = %q, want AAPL", got)
	}
}
