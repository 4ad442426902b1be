package domain

import "fmt"

// ProviderErrorKind categorizes why a provider did not return a summary.
type ProviderErrorKind string

const (
	// ProviderUnavailable means the provider has no credential configured.
	// It is a skip, not a failure: the orchestrator moves on silently.
	ProviderUnavailable ProviderErrorKind = "unavailable"

	// ProviderCallFailed covers network errors, timeouts, non-success
	// upstream status codes, and unparsable payloads. It triggers
	// fallback and is logged, never surfaced to the caller.
	ProviderCallFailed ProviderErrorKind = "call_failed"
)

// ProviderError is the single failure type adapters return. The
// orchestrator inspects Kind to decide how loudly to log before advancing
// to the next fallback state.
type ProviderError struct {
	Provider   string
	Kind       ProviderErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s provider %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s provider %s", e.Provider, e.Kind)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ErrUnavailable reports a provider skipped for lack of a credential.
func ErrUnavailable(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ProviderUnavailable}
}

// ErrCallFailed reports a failed provider call.
func ErrCallFailed(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ProviderCallFailed, Err: err}
}

// ErrUpstreamStatus reports a non-success status from the upstream API.
func ErrUpstreamStatus(provider string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ProviderCallFailed, StatusCode: status, Err: err}
}
