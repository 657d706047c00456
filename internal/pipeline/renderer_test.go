package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/credlogic/metro2/internal/model"
)

func sampleReport() *model.ComplianceReport {
	report := &model.ComplianceReport{
		GeneratedAt:     time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Source:          "accounts.yaml",
		ComplianceScore: 67,
		Violations: []model.Violation{
			{
				Category:          model.CategoryDOFD,
				Kind:              model.ReasonMissingField,
				Field:             "Date of First Delinquency (Field 25)",
				Issue:             "no DOFD reported",
				CRRGReference:     "FCRA §623(a)(6)",
				RecommendedAction: "Report the DOFD",
				Severity:          model.SeverityHigh,
				AccountName:       "First Bank",
				AccountNumber:     "12345678",
			},
		},
		IssuesByCategory: map[model.Category]int{model.CategoryDOFD: 1},
	}
	report.Summary.TotalAccounts = 1
	report.Summary.AccountsWithIssues = 1
	report.Summary.TotalViolations = 1
	report.Summary.HighSeverity = 1
	return report
}

func TestRenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	renderer := NewRenderer(true)

	if err := renderer.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("Expected the JSON render to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if decoded["compliance_score"] != float64(67) {
		t.Errorf("Expected compliance_score 67, got %v", decoded["compliance_score"])
	}
	if _, ok := decoded["2025_compliant"]; !ok {
		t.Error("Expected the 2025_compliant key in the JSON output")
	}
	violations, ok := decoded["violations"].([]interface{})
	if !ok || len(violations) != 1 {
		t.Fatalf("Expected 1 violation in the JSON output, got %v", decoded["violations"])
	}
	first := violations[0].(map[string]interface{})
	if first["violation_type"] != "dofd" {
		t.Errorf("Expected violation_type dofd, got %v", first["violation_type"])
	}
}

func TestRenderMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	renderer := NewRenderer(true)

	if err := renderer.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("Expected the Markdown render to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"# Metro 2 Compliance Report",
		"67/100",
		"### High severity",
		"First Bank",
		"no DOFD reported",
		"Generated by metro2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected the Markdown report to contain %q", want)
		}
	}
}

func TestRenderMarkdownNoFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	renderer := NewRenderer(false)

	if err := renderer.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("Expected the Markdown render to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Generated by metro2") {
		t.Error("Expected the footer to be omitted")
	}
}

func TestRenderMarkdownCleanReport(t *testing.T) {
	report := &model.ComplianceReport{
		GeneratedAt:      time.Now().UTC(),
		ComplianceScore:  100,
		Compliant2025:    true,
		IssuesByCategory: map[model.Category]int{},
	}

	path := filepath.Join(t.TempDir(), "report.md")
	if err := NewRenderer(true).RenderMarkdown(report, path); err != nil {
		t.Fatalf("Expected the Markdown render to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No violations found.") {
		t.Error("Expected the clean-report message")
	}
}

func TestRenderMarkdownIncludesNarrative(t *testing.T) {
	report := sampleReport()
	report.LLM = &model.LLMSummary{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		SummaryMD: "The audit found one high severity issue.",
	}

	path := filepath.Join(t.TempDir(), "report.md")
	if err := NewRenderer(true).RenderMarkdown(report, path); err != nil {
		t.Fatalf("Expected the Markdown render to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "## Narrative summary") {
		t.Error("Expected the narrative section")
	}
	if !strings.Contains(out, "does not affect the score") {
		t.Error("Expected the narrative disclaimer")
	}
}
