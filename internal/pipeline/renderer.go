package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/credlogic/metro2/internal/model"
)

// Renderer writes compliance reports to JSON and Markdown files.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the canonical JSON report.
func (r *Renderer) RenderJSON(report *model.ComplianceReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the human-readable report.
func (r *Renderer) RenderMarkdown(report *model.ComplianceReport, path string) error {
	var b strings.Builder

	b.WriteString("# Metro 2 Compliance Report\n\n")
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", report.Source)
	}
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&b, "## Score\n\n")
	fmt.Fprintf(&b, "- **Compliance score:** %d/100\n", report.ComplianceScore)
	fmt.Fprintf(&b, "- **2025 compliant:** %t\n\n", report.Compliant2025)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Metric | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Accounts audited | %d |\n", report.Summary.TotalAccounts)
	fmt.Fprintf(&b, "| Accounts with issues | %d |\n", report.Summary.AccountsWithIssues)
	fmt.Fprintf(&b, "| Total violations | %d |\n", report.Summary.TotalViolations)
	fmt.Fprintf(&b, "| High severity | %d |\n", report.Summary.HighSeverity)
	fmt.Fprintf(&b, "| Medium severity | %d |\n", report.Summary.MediumSeverity)
	fmt.Fprintf(&b, "| Low severity | %d |\n\n", report.Summary.LowSeverity)

	b.WriteString("## Issues by category\n\n")
	categories := make([]string, 0, len(report.IssuesByCategory))
	for category := range report.IssuesByCategory {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: %d\n", category, report.IssuesByCategory[model.Category(category)])
	}
	b.WriteString("\n")

	if len(report.Violations) > 0 {
		b.WriteString("## Violations\n\n")
		for _, severity := range []model.Severity{model.SeverityHigh, model.SeverityMedium, model.SeverityLow} {
			wroteHeader := false
			for _, violation := range report.Violations {
				if violation.Severity != severity {
					continue
				}
				if !wroteHeader {
					fmt.Fprintf(&b, "### %s severity\n\n", titleCase(string(severity)))
					wroteHeader = true
				}
				fmt.Fprintf(&b, "- **%s** (%s), %s: %s", violation.AccountName, violation.AccountNumber, violation.Field, violation.Issue)
				if violation.CRRGReference != "" {
					fmt.Fprintf(&b, " _(%s)_", violation.CRRGReference)
				}
				b.WriteString("\n")
				if violation.RecommendedAction != "" {
					fmt.Fprintf(&b, "  - Action: %s\n", violation.RecommendedAction)
				}
			}
			if wroteHeader {
				b.WriteString("\n")
			}
		}
	} else {
		b.WriteString("No violations found.\n\n")
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.SummaryMD != "" {
		b.WriteString("## Narrative summary\n\n")
		fmt.Fprintf(&b, "_Generated by %s/%s; does not affect the score._\n\n", report.LLM.Provider, report.LLM.Model)
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by metro2, a CRRG 2025 field validation toolkit.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
