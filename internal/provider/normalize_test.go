package provider

import "testing"

func TestParseSummaryDefaults(t *testing.T) {
	// Only one field present; every other field gets its documented
	// default and environment comes from the adapter, not the payload.
	payload := `{"bugCategory":"crash","environment":"model says linux"}`

	s, err := ParseSummary(payload, "OS: Windows")
	if err != nil {
		t.Fatalf("ParseSummary() error = %v", err)
	}

	if s.BugCategory != "crash" {
		t.Errorf("BugCategory = %q, want %q", s.BugCategory, "crash")
	}
	if s.Environment != "OS: Windows" {
		t.Errorf("Environment = %q, want adapter input", s.Environment)
	}
	if s.ActualBehavior != DefaultBehavior {
		t.Errorf("ActualBehavior = %q, want %q", s.ActualBehavior, DefaultBehavior)
	}
	if s.ExpectedBehavior != DefaultBehavior {
		t.Errorf("ExpectedBehavior = %q, want %q", s.ExpectedBehavior, DefaultBehavior)
	}
	if s.RootCause != DefaultRootCause {
		t.Errorf("RootCause = %q, want %q", s.RootCause, DefaultRootCause)
	}
	if s.SuggestedSolution != DefaultSolution {
		t.Errorf("SuggestedSolution = %q, want %q", s.SuggestedSolution, DefaultSolution)
	}
}

func TestParseSummaryEmptyObject(t *testing.T) {
	s, err := ParseSummary(`{}`, "Environment not specified")
	if err != nil {
		t.Fatalf("ParseSummary() error = %v", err)
	}
	if s.BugCategory != DefaultCategory {
		t.Errorf("BugCategory = %q, want %q", s.BugCategory, DefaultCategory)
	}
}

func TestParseSummaryMalformed(t *testing.T) {
	if _, err := ParseSummary(`not json at all`, "env"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := StripFences(tt.in); got != tt.want {
			t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
