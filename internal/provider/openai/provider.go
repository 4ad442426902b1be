// Package openai adapts the OpenAI Chat Completions API to the trainer's
// Provider interface.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openaiapi "github.com/multimodal-bug-summarizer/trainer/internal/api/openai"
	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
	"github.com/multimodal-bug-summarizer/trainer/internal/provider"
)

const (
	providerName = "openai"
	modelID      = "gpt-4o-mini"
	temperature  = 0.3

	systemPrompt = "You are a bug analysis expert. Always respond with valid JSON only."

	// promptTemplate embeds description, stack trace and environment
	// summary. This template's category list (10 entries) intentionally
	// differs from the Gemini one, which adds server-error and
	// routing-error.
	promptTemplate = `You are an expert software debugging assistant. Analyze this bug report and provide a structured summary with root cause analysis.

Bug Description:
%s

Stack Trace:
%s

Environment:
%s

Provide a JSON response with these exact fields:
- actualBehavior: What is actually happening (1-2 sentences)
- expectedBehavior: What should happen instead (1-2 sentences)
- bugCategory: One of [crash, null-reference, network-error, authentication, ui-rendering, performance, memory-leak, logic-error, validation-error, configuration-error]
- rootCause: Deep analysis of WHY this bug is happening. Look at error messages, stack traces, and patterns to identify the underlying cause. Be specific about which module/component/function is failing and why. (2-3 sentences)
- suggestedSolution: Specific, actionable steps to fix this bug based on the root cause (2-3 sentences with code examples if relevant)

Think like a developer debugging: trace the error back to its source, identify the failing component, and explain the mechanism of failure.`
)

// ProviderOption configures the provider.
type ProviderOption func(*Provider)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) ProviderOption {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ProviderOption {
	return func(p *Provider) {
		p.httpClient = httpClient
	}
}

// Provider implements domain.Provider against the OpenAI API.
type Provider struct {
	client     *openaiapi.Client
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new OpenAI provider. An empty apiKey yields a provider
// that reports ProviderUnavailable on every call.
func New(apiKey string, opts ...ProviderOption) *Provider {
	p := &Provider{apiKey: apiKey}
	for _, opt := range opts {
		opt(p)
	}

	var clientOpts []openaiapi.ClientOption
	if p.baseURL != "" {
		clientOpts = append(clientOpts, openaiapi.WithBaseURL(p.baseURL))
	}
	if p.httpClient != nil {
		clientOpts = append(clientOpts, openaiapi.WithHTTPClient(p.httpClient))
	}

	p.client = openaiapi.NewClient(apiKey, clientOpts...)
	return p
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) ModelID() string { return modelID }

// Analyze sends the analysis prompt and normalizes the model's JSON
// object into a BugSummary. Any upstream failure or unparsable payload is
// reported as a ProviderError; fallback is the orchestrator's job.
func (p *Provider) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.BugSummary, error) {
	if p.apiKey == "" {
		return nil, domain.ErrUnavailable(providerName)
	}

	temp := temperature
	apiReq := &openaiapi.ChatCompletionRequest{
		Model: modelID,
		Messages: []openaiapi.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, req.Description, req.Stacktrace, req.Environment)},
		},
		Temperature:    &temp,
		ResponseFormat: &openaiapi.ResponseFormat{Type: "json_object"},
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		var statusErr *openaiapi.StatusError
		if errors.As(err, &statusErr) {
			return nil, domain.ErrUpstreamStatus(providerName, statusErr.StatusCode, err)
		}
		return nil, domain.ErrCallFailed(providerName, err)
	}

	if len(resp.Choices) == 0 {
		return nil, domain.ErrCallFailed(providerName, errors.New("response contained no choices"))
	}

	summary, err := provider.ParseSummary(resp.Choices[0].Message.Content, req.Environment)
	if err != nil {
		return nil, domain.ErrCallFailed(providerName, err)
	}
	return summary, nil
}
