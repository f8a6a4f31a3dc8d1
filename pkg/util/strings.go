package util

import "strings"

// Tokenize splits s into lower-cased whitespace-delimited tokens.
func Tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// ContainsFold reports whether substr appears in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FirstNonEmpty returns the first non-empty string in xs.
func FirstNonEmpty(xs ...string) string {
	for _, x := range xs {
		if strings.TrimSpace(x) != "" {
			return x
		}
	}
	return ""
}
