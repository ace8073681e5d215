package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrInvalidRequest        = errors.New("invalid request")
	// ErrEmptyAnswer is returned for a successful call that produced no text.
	ErrEmptyAnswer = errors.New("empty answer")
)

// ProviderError records which provider produced Err.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s (%d attempt(s)): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
