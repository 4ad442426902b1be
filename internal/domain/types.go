// Package domain holds the core types shared by the classifier, the
// provider adapters, and the HTTP surface.
package domain

// Bug categories the service can assign. The classifier only ever emits a
// subset of these; the remainder exist for the provider prompts, which ask
// the upstream models to pick from the same vocabulary.
const (
	CategoryUnknown       = "unknown"
	CategoryCrash         = "crash"
	CategoryNullReference = "null-reference"
	CategoryNetworkError  = "network-error"
	CategoryAuth          = "authentication"
	CategoryUIRendering   = "ui-rendering"
	CategoryPerformance   = "performance"
	CategoryMemoryLeak    = "memory-leak"
	CategoryLogicError    = "logic-error"
	CategoryValidation    = "validation-error"
	CategoryConfiguration = "configuration-error"
	CategoryServerError   = "server-error"
	CategoryRoutingError  = "routing-error"
)

// BugReport is the raw input to an analysis: free-text description, an
// optional stack trace, environment metadata, and image paths reserved for
// future multimodal input. A nil Environment means the caller sent none at
// all, which is distinct from an empty mapping.
type BugReport struct {
	Description string
	Stacktrace  string
	Environment map[string]any
	ImagePaths  []string
}

// AnalysisRequest is what a provider adapter needs to build its prompt.
// Environment is the pre-built human-readable summary, not the raw mapping.
type AnalysisRequest struct {
	Description string
	Stacktrace  string
	Environment string
}

// BugSummary is the structured analysis result. Every field is always
// populated; a field that could not be determined carries documented
// filler text rather than being empty.
type BugSummary struct {
	Environment       string `json:"environment"`
	ActualBehavior    string `json:"actualBehavior"`
	ExpectedBehavior  string `json:"expectedBehavior"`
	BugCategory       string `json:"bugCategory"`
	RootCause         string `json:"rootCause"`
	SuggestedSolution string `json:"suggestedSolution"`
}

// ModelInfo identifies which path produced a summary: an upstream model id
// or the rule-based fallback.
type ModelInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InferenceResult is the full response for one report. ID echoes the
// caller-supplied correlation id unchanged.
type InferenceResult struct {
	ID        string     `json:"id"`
	Summary   BugSummary `json:"summary"`
	Model     ModelInfo  `json:"model"`
	Timestamp string     `json:"timestamp"`
}
