// Package orchestrator drives one bug report through the provider chain:
// each configured provider is attempted in priority order, and when none
// succeeds the rule-based classifier produces the answer. The classifier
// never fails, so Process always returns a populated result.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/multimodal-bug-summarizer/trainer/internal/classifier"
	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
	"github.com/multimodal-bug-summarizer/trainer/internal/report"
)

const (
	// FallbackModelName identifies the rule-based path in response
	// metadata. Callers key off this exact string.
	FallbackModelName = "rule-based-analyzer"

	modelVersion = "1.0"
)

// Orchestrator selects the analysis path for each request. Providers are
// read-only after construction; requests share no other state.
type Orchestrator struct {
	providers []domain.Provider
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// New creates an orchestrator that tries providers in the given order
// before falling back to the classifier.
func New(providers []domain.Provider, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		providers: providers,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process analyzes one bug report and returns the final result. Provider
// failures are recovered here and never escape: an unavailable provider
// is skipped quietly, a failed call is logged at WARN, and the classifier
// terminates the chain unconditionally.
func (o *Orchestrator) Process(ctx context.Context, id string, rep domain.BugReport) domain.InferenceResult {
	envSummary := report.SummarizeEnvironment(rep.Environment)

	req := domain.AnalysisRequest{
		Description: rep.Description,
		Stacktrace:  rep.Stacktrace,
		Environment: envSummary,
	}

	var summary *domain.BugSummary
	modelName := FallbackModelName

	for _, p := range o.providers {
		s, err := p.Analyze(ctx, req)
		if err != nil {
			var perr *domain.ProviderError
			if errors.As(err, &perr) && perr.Kind == domain.ProviderUnavailable {
				o.logger.Debug("provider not configured, skipping",
					slog.String("provider", p.Name()))
			} else {
				o.logger.Warn("provider analysis failed, falling back",
					slog.String("provider", p.Name()),
					slog.String("error", err.Error()))
			}
			continue
		}
		summary = s
		modelName = p.ModelID()
		break
	}

	if summary == nil {
		s := classifier.Analyze(rep.Description, rep.Stacktrace, envSummary)
		summary = &s
	}

	o.logger.Info("processed inference request",
		slog.String("report_id", id),
		slog.String("model", modelName),
		slog.String("category", summary.BugCategory))

	return domain.InferenceResult{
		ID:      id,
		Summary: *summary,
		Model: domain.ModelInfo{
			Name:    modelName,
			Version: modelVersion,
		},
		Timestamp: o.now().UTC().Format(time.RFC3339),
	}
}
