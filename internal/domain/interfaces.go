package domain

import "context"

// Provider produces an AI-assisted bug summary from a report.
//
// Analyze either returns a fully normalized summary (every field
// populated, environment pinned to the request's summary string) or a
// *ProviderError. Adapters never degrade internally; fallback policy
// belongs to the orchestrator.
type Provider interface {
	// Name is the short provider name used in logs.
	Name() string

	// ModelID is the model identifier recorded in the response metadata
	// when this provider produced the summary.
	ModelID() string

	Analyze(ctx context.Context, req AnalysisRequest) (*BugSummary, error)
}
