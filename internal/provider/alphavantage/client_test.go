package alphavantage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDescribe(t *testing.T) {
	var gotFn, gotSym string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFn = r.URL.Query().Get("function")
		gotSym = r.URL.Query().Get("symbol")
		json.NewEncoder(w).Encode(map[string]string{
			"Name":        "Apple Inc",
			"Description": "  Apple Inc. designs consumer electronics.  ",
		})
	}))
	defer srv.Close()

	c := New("key", srv.URL, 0)
	got, err := c.Describe(context.Background(), "AAPL")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Apple Inc. designs consumer electronics.", got)
	assert.Equal(t, "OVERVIEW", gotFn)
	assert.Equal(t, "AAPL", gotSym)
}

func TestDescribeUnknownSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := New("key", srv.URL, 0)
	got, err := c.Describe(context.Background(), "ZZZZ")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", got)
}
