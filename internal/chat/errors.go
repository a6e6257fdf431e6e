package chat

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the dispatch layer can produce.
// Callers branch with errors.Is; none of these are retried internally.
var (
	// ErrInvalidRequest marks a malformed inbound request. Raised only by
	// Normalize, always with a field-specific message, and never reaches
	// dispatch.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedProvider marks a provider id absent from the catalogue.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrProviderNotConfigured marks required environment variables missing
	// at dispatch time. The text reads inline ("Provider X is not
	// configured. ...") so callers wrap it mid-message.
	ErrProviderNotConfigured = errors.New("not configured")

	// ErrProviderNotImplemented marks a catalogued provider with no adapter
	// registered. This indicates a deployment bug, not caller error.
	ErrProviderNotImplemented = errors.New("provider not implemented")

	// ErrUpstreamTimeout marks an upstream call that exceeded its wall-clock
	// budget and was cancelled.
	ErrUpstreamTimeout = errors.New("upstream timeout")
)

// UpstreamError reports a non-success HTTP status from a provider. Body is
// the raw response text, surfaced verbatim so operators can diagnose
// provider-side failures.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error (%d): %s", e.Provider, e.Status, e.Body)
}
