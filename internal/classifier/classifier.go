// Package classifier is the deterministic fallback analyzer: an ordered
// keyword-rule table over the report text. It needs no network, never
// fails, and is the terminal state of the orchestrator's fallback chain.
package classifier

import (
	"strings"

	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
)

// Filler text used until a rule or an explicit override supplies better.
const (
	defaultActual    = "Application exhibits unexpected behavior"
	defaultExpected  = "Application should function normally"
	defaultRootCause = "Unable to determine root cause from available information"
	defaultSolution  = "Please review the error logs and stack trace for more details"
)

// maxExtractLen bounds behavior text lifted from "actual:"/"expected:"
// lines in the report.
const maxExtractLen = 200

// Analyze classifies a bug report without any external dependency. It is
// pure and total: identical input yields identical output, and every
// field of the returned summary is non-empty.
//
// Description and stack trace are concatenated and lowercased, then
// matched against the rule table in order; the first rule whose keywords
// appear wins and later rules are not evaluated. After the rule step, an
// override pass lifts explicit "actual:"/"expected:" lines out of the
// text regardless of which rule matched.
func Analyze(description, stacktrace, environment string) domain.BugSummary {
	text := strings.ToLower(description + " " + stacktrace)

	summary := domain.BugSummary{
		Environment:       environment,
		ActualBehavior:    defaultActual,
		ExpectedBehavior:  defaultExpected,
		BugCategory:       domain.CategoryUnknown,
		RootCause:         defaultRootCause,
		SuggestedSolution: defaultSolution,
	}

	for _, r := range rules {
		if containsAny(text, r.keywords) {
			r.apply(text, &summary)
			break
		}
	}

	applyBehaviorOverrides(text, &summary)
	return summary
}

// applyBehaviorOverrides replaces the behavior fields with text the
// reporter spelled out explicitly. "observed:" and "should:" trigger the
// scan but only "actual:"/"expected:" lines are extracted; a trigger with
// no matching line leaves the rule-provided default in place.
func applyBehaviorOverrides(text string, s *domain.BugSummary) {
	if strings.Contains(text, "actual:") || strings.Contains(text, "observed:") {
		if v, ok := extractLineAfter(text, "actual:"); ok {
			s.ActualBehavior = v
		}
	}
	if strings.Contains(text, "expected:") || strings.Contains(text, "should:") {
		if v, ok := extractLineAfter(text, "expected:"); ok {
			s.ExpectedBehavior = v
		}
	}
}

// extractLineAfter scans line by line for the first line containing
// marker and returns the trimmed remainder of that line, truncated to
// maxExtractLen characters. Truncation counts runes, not bytes, so a
// multibyte rune at the cut point survives whole. A marker followed by
// nothing reports no match so the caller keeps its default.
func extractLineAfter(text, marker string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		i := strings.Index(line, marker)
		if i < 0 {
			continue
		}
		v := strings.TrimSpace(line[i+len(marker):])
		if runes := []rune(v); len(runes) > maxExtractLen {
			v = string(runes[:maxExtractLen])
		}
		if v == "" {
			return "", false
		}
		return v, true
	}
	return "", false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
