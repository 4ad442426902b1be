// Package report derives presentation strings from raw bug report input.
package report

import (
	"fmt"
	"strings"
)

// Sentinels for the two flavors of "nothing useful in the environment".
const (
	// NoEnvironment is used when the caller sent no environment mapping
	// at all.
	NoEnvironment = "No environment information provided"

	// EnvironmentNotSpecified is used when a mapping was sent but none of
	// the recognized fields carried a value.
	EnvironmentNotSpecified = "Environment not specified"
)

// SummarizeEnvironment builds the human-readable environment line that
// feeds both provider prompts and the classifier, and is copied verbatim
// into the final summary. Recognized keys are os, browser and
// browserVersion; fields appear in that fixed order, comma-joined. A nil
// mapping means the environment was absent entirely.
func SummarizeEnvironment(env map[string]any) string {
	if env == nil {
		return NoEnvironment
	}

	var parts []string
	if os := stringValue(env, "os"); os != "" {
		parts = append(parts, "OS: "+os)
	}
	if browser := stringValue(env, "browser"); browser != "" {
		b := "Browser: " + browser
		if version := stringValue(env, "browserVersion"); version != "" {
			b += " " + version
		}
		parts = append(parts, b)
	}

	if len(parts) == 0 {
		return EnvironmentNotSpecified
	}
	return strings.Join(parts, ", ")
}

// stringValue renders a mapping value for display. Callers may send
// numbers (browserVersion especially), so anything non-nil is formatted.
func stringValue(env map[string]any, key string) string {
	v, ok := env[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
