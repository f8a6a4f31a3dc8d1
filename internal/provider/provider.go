// Package provider holds the error taxonomy shared by all outbound data
// providers. Every concrete client lives in a subpackage.
package provider

import (
	"errors"
	"fmt"
)

// ErrNotConfigured signals a missing credential. Callers treat it exactly
// like an unavailable provider: skip and move on, never fail the request.
var ErrNotConfigured = errors.New("provider credential not configured")

// Error is a per-provider transport or status failure. It is caught at the
// fallback coordinator and never propagates past it.
type Error struct {
	Provider string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf wraps err as a provider Error.
func Errorf(name string, err error) *Error {
	return &Error{Provider: name, Err: err}
}
