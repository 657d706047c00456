package model

import "time"

// Severity indicates how heavily a violation weighs on the compliance score.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Category identifies the rule family that produced a violation.
type Category string

const (
	CategoryStatusCodes          Category = "status_codes"
	CategoryPaymentPatterns      Category = "payment_patterns"
	CategorySpecialComments      Category = "special_comments"
	CategoryComplianceConditions Category = "compliance_conditions"
	CategoryDOFD                 Category = "dofd"
	Category2025Requirements     Category = "2025_requirements"
)

// Categories lists every rule family in validator execution order.
func Categories() []Category {
	return []Category{
		CategoryStatusCodes,
		CategoryPaymentPatterns,
		CategorySpecialComments,
		CategoryComplianceConditions,
		CategoryDOFD,
		Category2025Requirements,
	}
}

// ReasonKind is the machine-readable cause of a violation. Downstream code
// branches on Kind; Issue is display text only.
type ReasonKind string

const (
	ReasonMissingField ReasonKind = "missing_field"
	ReasonMissingCode  ReasonKind = "missing_code"
	ReasonInvalidCode  ReasonKind = "invalid_code"
	ReasonInconsistent ReasonKind = "inconsistent"
	ReasonReAging      ReasonKind = "re_aging"
	ReasonObsolete     ReasonKind = "obsolete"
	ReasonFutureDate   ReasonKind = "future_date"
	ReasonChronology   ReasonKind = "chronology"
)

// Violation is one rule finding. Violations are pure data: created fresh per
// validation call and owned by the caller once returned.
type Violation struct {
	Category          Category   `json:"violation_type"`
	Kind              ReasonKind `json:"kind"`
	Code              string     `json:"code,omitempty"`
	Field             string     `json:"field"`
	Issue             string     `json:"issue"`
	CRRGReference     string     `json:"crrg_reference,omitempty"`
	RecommendedAction string     `json:"recommended_action,omitempty"`
	Severity          Severity   `json:"severity"`

	// Set by the aggregator when a violation is folded into a report.
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// Result is the common part of every per-check output. Violation order is the
// check order within the validator.
type Result struct {
	IsValid    bool        `json:"is_valid"`
	Violations []Violation `json:"violations"`
}

// Finalize sets IsValid from the accumulated violations.
func (r *Result) Finalize() {
	r.IsValid = len(r.Violations) == 0
}

// StatusResult is the account status check output.
type StatusResult struct {
	Result
	Info         *StatusCode `json:"status_info,omitempty"`
	IsDerogatory bool        `json:"is_derogatory"`
	RequiresDOFD bool        `json:"requires_dofd"`
}

// PatternAnalysis summarizes a payment history string.
type PatternAnalysis struct {
	Length          int      `json:"length"`
	MostRecent      string   `json:"most_recent"`
	DerogatoryCount int      `json:"derogatory_count"`
	CurrentCount    int      `json:"current_count"`
	SpecialCodes    []string `json:"special_codes,omitempty"`
}

// PatternResult is the payment pattern check output.
type PatternResult struct {
	Result
	Analysis PatternAnalysis `json:"pattern_analysis"`
}

// CommentDetail pairs a recognized comment code with its reference entry.
type CommentDetail struct {
	Code string         `json:"code"`
	Info SpecialComment `json:"info"`
}

// CommentsResult is the special comments check output.
type CommentsResult struct {
	Result
	Details []CommentDetail `json:"comment_details,omitempty"`
}

// ConditionDetail pairs a recognized condition code with its reference entry.
type ConditionDetail struct {
	Code string              `json:"code"`
	Info ComplianceCondition `json:"info"`
}

// ConditionsResult is the compliance conditions check output.
type ConditionsResult struct {
	Result
	Details          []ConditionDetail `json:"condition_details,omitempty"`
	Has2025Enhanced  bool              `json:"has_2025_enhanced"`
	HasSCRAProtected bool              `json:"has_scra_protected"`
}

// DOFDResult is the DOFD hierarchy check output. The derived fields are nil
// when the account has no DOFD.
type DOFDResult struct {
	Result
	DOFD                  *time.Time `json:"dofd,omitempty"`
	WithinReportingPeriod *bool      `json:"within_reporting_period,omitempty"`
	DaysUntilExpiration   *int       `json:"days_until_expiration,omitempty"`
}

// RequirementsResult is the 2025 required-fields check output. MissingFields
// is built from the structured violations, never from issue text.
type RequirementsResult struct {
	Result
	Compliant2025 bool     `json:"2025_compliant"`
	MissingFields []string `json:"missing_fields,omitempty"`
}
