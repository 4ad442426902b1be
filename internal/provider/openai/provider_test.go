package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
)

func completionBody(content string) string {
	resp := map[string]any{
		"id":    "chatcmpl-test",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestAnalyze(t *testing.T) {
	var gotReq map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{
			"actualBehavior": "save button crashes",
			"expectedBehavior": "save should persist",
			"bugCategory": "crash",
			"rootCause": "null state",
			"suggestedSolution": "add a guard",
			"environment": "ignored"
		}`)))
	}))
	defer upstream.Close()

	p := New("test-key", WithBaseURL(upstream.URL))

	summary, err := p.Analyze(context.Background(), domain.AnalysisRequest{
		Description: "crash on save",
		Stacktrace:  "at save()",
		Environment: "OS: Windows",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if summary.BugCategory != "crash" {
		t.Errorf("BugCategory = %q, want %q", summary.BugCategory, "crash")
	}
	if summary.Environment != "OS: Windows" {
		t.Errorf("Environment = %q, want adapter input to win over model output", summary.Environment)
	}

	if gotReq["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v, want gpt-4o-mini", gotReq["model"])
	}
	if gotReq["temperature"] != 0.3 {
		t.Errorf("temperature = %v, want 0.3", gotReq["temperature"])
	}
	rf, _ := gotReq["response_format"].(map[string]any)
	if rf["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", gotReq["response_format"])
	}

	messages, _ := gotReq["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(messages))
	}
	user, _ := messages[1].(map[string]any)
	prompt, _ := user["content"].(string)
	for _, fragment := range []string{"crash on save", "at save()", "OS: Windows"} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestAnalyzeFillsMissingFields(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody(`{"bugCategory":"network-error"}`)))
	}))
	defer upstream.Close()

	p := New("test-key", WithBaseURL(upstream.URL))
	summary, err := p.Analyze(context.Background(), domain.AnalysisRequest{Environment: "env"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if summary.ActualBehavior != "Unable to determine" {
		t.Errorf("ActualBehavior = %q, want default", summary.ActualBehavior)
	}
	if summary.RootCause != "Root cause analysis unavailable" {
		t.Errorf("RootCause = %q, want default", summary.RootCause)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer upstream.Close()

	p := New("test-key", WithBaseURL(upstream.URL))
	_, err := p.Analyze(context.Background(), domain.AnalysisRequest{})
	if err == nil {
		t.Fatal("expected error")
	}

	var perr *domain.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *domain.ProviderError", err)
	}
	if perr.Kind != domain.ProviderCallFailed {
		t.Errorf("Kind = %q, want %q", perr.Kind, domain.ProviderCallFailed)
	}
	if perr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", perr.StatusCode)
	}
}

func TestAnalyzeMalformedContent(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("this is not json")))
	}))
	defer upstream.Close()

	p := New("test-key", WithBaseURL(upstream.URL))
	if _, err := p.Analyze(context.Background(), domain.AnalysisRequest{}); err == nil {
		t.Fatal("expected error for unparsable model output")
	}
}

func TestAnalyzeWithoutCredential(t *testing.T) {
	p := New("")
	_, err := p.Analyze(context.Background(), domain.AnalysisRequest{})

	var perr *domain.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *domain.ProviderError", err)
	}
	if perr.Kind != domain.ProviderUnavailable {
		t.Errorf("Kind = %q, want %q", perr.Kind, domain.ProviderUnavailable)
	}
}
