package llm

import (
	"context"
	"fmt"

	"github.com/credlogic/metro2/internal/model"
	"github.com/credlogic/metro2/internal/worker"
)

// Summarizer wraps a provider with the rate limiter and the allowlist
// plumbing. A Summarizer with a nil provider is disabled and returns no
// summary.
type Summarizer struct {
	provider Provider
	config   Config
	limiter  *worker.Limiter
}

// NewSummarizer creates a summarizer from configuration.
func NewSummarizer(config Config, limiter *worker.Limiter) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return &Summarizer{
		provider: provider,
		config:   config,
		limiter:  limiter,
	}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider's name.
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces the narrative for a finished report. An
// unavailable provider degrades to a warning, never a failed audit.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.ComplianceReport) (*model.LLMSummary, error) {
	if s.provider == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.LLMSummary{
			Enabled:  false,
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("LLM provider %s is not available; summary skipped", s.provider.Name())},
		}, nil
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	allowed := allowedAccountNumbers(report)
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:          report,
		AllowedAccounts: allowed,
		Model:           s.config.Model,
		MaxTokens:       s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}, nil
}

// allowedAccountNumbers collects the distinct account numbers present in the
// report, preserving first-seen order.
func allowedAccountNumbers(report model.ComplianceReport) []string {
	var numbers []string
	seen := map[string]bool{}
	for _, violation := range report.Violations {
		number := violation.AccountNumber
		if number == "" || number == "Unknown" || seen[number] {
			continue
		}
		seen[number] = true
		numbers = append(numbers, number)
	}
	return numbers
}
