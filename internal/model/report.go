package model

import "time"

// ComplianceReport is the aggregator's output for one batch of accounts.
type ComplianceReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source,omitempty"` // file the batch was loaded from, if any

	Violations       []Violation      `json:"violations"`
	ComplianceScore  int              `json:"compliance_score"`
	Compliant2025    bool             `json:"2025_compliant"`
	IssuesByCategory map[Category]int `json:"issues_by_category"`
	Summary          ReportSummary    `json:"summary"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional narrative, never affects the score
}

// ReportSummary holds batch-level counts.
type ReportSummary struct {
	TotalAccounts      int `json:"total_accounts"`
	AccountsWithIssues int `json:"accounts_with_issues"`
	TotalViolations    int `json:"total_violations"`
	HighSeverity       int `json:"high_severity"`
	MediumSeverity     int `json:"medium_severity"`
	LowSeverity        int `json:"low_severity"`
}

// CountBySeverity tallies one violation into the summary.
func (s *ReportSummary) CountBySeverity(sev Severity) {
	s.TotalViolations++
	switch sev {
	case SeverityHigh:
		s.HighSeverity++
	case SeverityMedium:
		s.MediumSeverity++
	case SeverityLow:
		s.LowSeverity++
	}
}

// LLMSummary contains the optional LLM-generated narrative. It is produced
// after scoring and clearly separated from the rule engine output.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
