// Package gemini adapts the Google Gemini generateContent API to the
// trainer's Provider interface.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	geminiapi "github.com/multimodal-bug-summarizer/trainer/internal/api/gemini"
	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
	"github.com/multimodal-bug-summarizer/trainer/internal/provider"
)

const (
	providerName = "gemini"
	modelID      = "gemini-2.0-flash"

	temperature     = 0.3
	topP            = 0.95
	topK            = 40
	maxOutputTokens = 1024

	// promptTemplate embeds description, stack trace and environment
	// summary. Its category list carries 12 entries, two more than the
	// OpenAI template (server-error and routing-error); the two prompts
	// are kept distinct on purpose.
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
- bugCategory: One of [crash, null-reference, network-error, authentication, ui-rendering, performance, memory-leak, logic-error, validation-error, configuration-error, server-error, routing-error]
- rootCause: Deep analysis of WHY this bug is happening. Examine error messages, stack traces, and patterns to identify the underlying cause. Be specific about which module/component/function is failing and explain the mechanism of failure. Consider: null pointers, race conditions, unhandled exceptions, incorrect state, API failures, configuration issues, etc. (2-3 sentences)
- suggestedSolution: Specific, actionable steps to fix this bug based on the root cause (2-3 sentences with code examples if relevant)

Think like a senior developer debugging: trace the error back to its source, identify the failing component, explain WHY it's failing, and provide targeted solutions. Respond ONLY with valid JSON, no markdown formatting.`
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

// Provider implements domain.Provider against the Gemini API.
type Provider struct {
	client     *geminiapi.Client
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Gemini provider. An empty apiKey yields a provider
// that reports ProviderUnavailable on every call.
func New(apiKey string, opts ...ProviderOption) *Provider {
	p := &Provider{apiKey: apiKey}
	for _, opt := range opts {
		opt(p)
	}

	var clientOpts []geminiapi.ClientOption
	if p.baseURL != "" {
		clientOpts = append(clientOpts, geminiapi.WithBaseURL(p.baseURL))
	}
	if p.httpClient != nil {
		clientOpts = append(clientOpts, geminiapi.WithHTTPClient(p.httpClient))
	}

	p.client = geminiapi.NewClient(apiKey, clientOpts...)
	return p
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) ModelID() string { return modelID }

// Analyze sends the analysis prompt and normalizes the model's JSON
// object into a BugSummary. Markdown fences around the payload are
// stripped before parsing; anything else unparsable is a ProviderError.
func (p *Provider) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.BugSummary, error) {
	if p.apiKey == "" {
		return nil, domain.ErrUnavailable(providerName)
	}

	temp := temperature
	tp := topP
	tk := topK
	apiReq := &geminiapi.GenerateContentRequest{
		Contents: []geminiapi.Content{
			{
				Role: "user",
				Parts: []geminiapi.Part{
					{Text: fmt.Sprintf(promptTemplate, req.Description, req.Stacktrace, req.Environment)},
				},
			},
		},
		GenerationConfig: &geminiapi.GenerationConfig{
			Temperature:     &temp,
			TopP:            &tp,
			TopK:            &tk,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	resp, err := p.client.GenerateContent(ctx, modelID, apiReq)
	if err != nil {
		var statusErr *geminiapi.StatusError
		if errors.As(err, &statusErr) {
			return nil, domain.ErrUpstreamStatus(providerName, statusErr.StatusCode, err)
		}
		return nil, domain.ErrCallFailed(providerName, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, domain.ErrCallFailed(providerName, errors.New("response contained no candidates"))
	}

	summary, err := provider.ParseSummary(provider.StripFences(text), req.Environment)
	if err != nil {
		return nil, domain.ErrCallFailed(providerName, err)
	}
	return summary, nil
}
