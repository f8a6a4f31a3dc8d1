package util

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("  Tata  Motors ")
	want := []string{"tata", "motors"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := Tokenize("   "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("AAPL Hits Record High", "aapl") {
		t.Fatalf("expected match")
	}
	if ContainsFold("Ford announces truck", "tesla") {
		t.Fatalf("unexpected match")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonEmpty("", "  "); got != "" {
		t.Fatalf("got %q", got)
	}
}
