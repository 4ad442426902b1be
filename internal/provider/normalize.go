// Package provider holds what both adapters share: the JSON shape the
// upstream models are asked to produce and its normalization into a
// BugSummary.
package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
)

// Defaults substituted for fields the model left out of its JSON object.
const (
	DefaultBehavior  = "Unable to determine"
	DefaultCategory  = domain.CategoryUnknown
	DefaultRootCause = "Root cause analysis unavailable"
	DefaultSolution  = "Please review the error logs"
)

// analysis mirrors the JSON object the prompts ask for. The model's
// environment field, if any, is ignored: the adapter's input summary is
// authoritative.
type analysis struct {
	ActualBehavior    string `json:"actualBehavior"`
	ExpectedBehavior  string `json:"expectedBehavior"`
	BugCategory       string `json:"bugCategory"`
	RootCause         string `json:"rootCause"`
	SuggestedSolution string `json:"suggestedSolution"`
}

// ParseSummary decodes a model's JSON payload and normalizes it: missing
// fields get their documented defaults and environment is pinned to the
// summary string the adapter was given. A payload that is not a JSON
// object is an error; adapters never fabricate a summary from garbage.
func ParseSummary(payload string, environment string) (*domain.BugSummary, error) {
	var a analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("malformed analysis payload: %w", err)
	}

	return &domain.BugSummary{
		Environment:       environment,
		ActualBehavior:    orDefault(a.ActualBehavior, DefaultBehavior),
		ExpectedBehavior:  orDefault(a.ExpectedBehavior, DefaultBehavior),
		BugCategory:       orDefault(a.BugCategory, DefaultCategory),
		RootCause:         orDefault(a.RootCause, DefaultRootCause),
		SuggestedSolution: orDefault(a.SuggestedSolution, DefaultSolution),
	}, nil
}

// StripFences removes a surrounding markdown code fence. Gemini sometimes
// wraps its JSON in ```json blocks despite being told not to.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
