// Package llm generates an optional plain-language narrative for a
// compliance report. The narrative is produced after scoring and never
// affects the score or the violation list.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/credlogic/metro2/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a narrative for the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for report summarization.
type SummarizeRequest struct {
	// Report is the compliance report to narrate
	Report model.ComplianceReport

	// AllowedAccounts is the strict allowlist of account numbers the model
	// may reference; anything else in the output is treated as fabrication
	AllowedAccounts []string

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the provider-specific model name
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the provider's output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for OpenAI-compatible endpoints (e.g. a local runtime)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// StrictAccounts enforces the account number allowlist
	StrictAccounts bool

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:       "", // disabled by default
		Timeout:        30,
		StrictAccounts: true,
		MaxTokens:      1000,
	}
}

// BuildPrompt constructs the default summarization prompt. The model is told
// to describe reported findings only, never to re-judge compliance.
func BuildPrompt(report model.ComplianceReport, allowedAccounts []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are summarizing a Metro 2 compliance audit report for a credit repair analyst.

CRITICAL RULES:
1. Only reference accounts from this list: %s
2. Do not invent accounts, balances, or dates not present in the findings.
3. Describe the findings the rule engine produced; never assert your own compliance judgment.
4. Keep the tone factual: "The audit found...", "Account X is missing...".

Report summary:
- Accounts audited: %d
- Accounts with issues: %d
- Total violations: %d (%d high, %d medium, %d low)
- Compliance score: %d/100
- 2025 compliant: %t

Findings:
`,
		strings.Join(allowedAccounts, ", "),
		report.Summary.TotalAccounts,
		report.Summary.AccountsWithIssues,
		report.Summary.TotalViolations,
		report.Summary.HighSeverity,
		report.Summary.MediumSeverity,
		report.Summary.LowSeverity,
		report.ComplianceScore,
		report.Compliant2025,
	)

	for i, violation := range report.Violations {
		if i >= 50 {
			fmt.Fprintf(&b, "- ... and %d more findings\n", len(report.Violations)-i)
			break
		}
		fmt.Fprintf(&b, "- [%s] %s / %s: %s\n", violation.Severity, violation.AccountName, violation.Field, violation.Issue)
	}

	b.WriteString("\nWrite a short Markdown summary (3-6 paragraphs) of the audit, grouping findings by severity and recommending next steps per the recommended actions.\n")
	return b.String()
}
