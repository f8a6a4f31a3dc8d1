package catalog

// Aliases maps common full company names, as users actually type them, to
// exchange-qualified tickers. Hand-maintained: covers names the catalog's
// official listing strings do not match (e.g. "tata motors" vs
// "Tata Motors Limited"). Keys are lower-case.
var Aliases = map[string]string{
	// NSE majors
	"tata motors":         "TATAMOTORS.NS",
	"tata steel":          "TATASTEEL.NS",
	"tata power":          "TATAPOWER.NS",
	"reliance":            "RELIANCE.NS",
	"reliance industries": "RELIANCE.NS",
	"infosys":             "INFY.NS",
	"tcs":                 "TCS.NS",
	"hdfc bank":           "HDFCBANK.NS",
	"icici bank":          "ICICIBANK.NS",
	"state bank of india": "SBIN.NS",
	"bharti airtel":       "BHARTIARTL.NS",
	"wipro":               "WIPRO.NS",
	"itc":                 "ITC.NS",

	// US majors
	"apple":     "AAPL",
	"microsoft": "MSFT",
	"google":    "GOOGL",
	"alphabet":  "GOOGL",
	"amazon":    "AMZN",
	"tesla":     "TSLA",
	"nvidia":    "NVDA",
	"meta":      "META",
	"netflix":   "NFLX",
}
