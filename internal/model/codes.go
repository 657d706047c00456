package model

import "strings"

// StatusCode describes one Metro 2 account status code (Field 17A)
type StatusCode struct {
	Code         string `json:"code" yaml:"code"`
	Description  string `json:"description" yaml:"description"`
	Category     string `json:"category" yaml:"category"`
	IsDerogatory bool   `json:"is_derogatory" yaml:"is_derogatory"`
	RequiresDOFD bool   `json:"requires_dofd" yaml:"requires_dofd"`
	CRRGSection  string `json:"crrg_section" yaml:"crrg_section"`
}

// PaymentRating describes one monthly payment history rating code
type PaymentRating struct {
	Code         string `json:"code" yaml:"code"`
	Description  string `json:"description" yaml:"description"`
	IsDerogatory bool   `json:"is_derogatory" yaml:"is_derogatory"`
	IsCurrent    bool   `json:"is_current" yaml:"is_current"`
	IsSpecial    bool   `json:"is_special" yaml:"is_special"`
	CRRGSection  string `json:"crrg_section" yaml:"crrg_section"`
}

// SpecialComment describes one special comment code (Field 19)
type SpecialComment struct {
	Code              string `json:"code" yaml:"code"`
	Description       string `json:"description" yaml:"description"`
	Category          string `json:"category" yaml:"category"`
	ConsumerFavorable bool   `json:"consumer_favorable" yaml:"consumer_favorable"`
	CRRGSection       string `json:"crrg_section" yaml:"crrg_section"`
}

// ComplianceCondition describes one compliance condition code (Field 20, XA-XR)
type ComplianceCondition struct {
	Code               string `json:"code" yaml:"code"`
	Description        string `json:"description" yaml:"description"`
	Category           string `json:"category" yaml:"category"`
	ConsumerProtection bool   `json:"consumer_protection" yaml:"consumer_protection"`
	SCRAProtected      bool   `json:"scra_protected" yaml:"scra_protected"`
	MLAProtected       bool   `json:"mla_protected" yaml:"mla_protected"`
	Enhanced2025       bool   `json:"2025_enhanced" yaml:"2025_enhanced"`
	RequiresEndDate    bool   `json:"requires_end_date" yaml:"requires_end_date"`
	CRRGSection        string `json:"crrg_section" yaml:"crrg_section"`
}

// DOFDRule documents one level of the Date of First Delinquency hierarchy:
// who establishes the DOFD and what later furnishers must do with it.
type DOFDRule struct {
	Priority    int    `json:"priority" yaml:"priority"`
	Source      string `json:"source" yaml:"source"`
	Rule        string `json:"rule" yaml:"rule"`
	CRRGSection string `json:"crrg_section" yaml:"crrg_section"`
}

// BankruptcyRequirement lists the 2025 reporting requirements for one
// bankruptcy chapter status code.
type BankruptcyRequirement struct {
	Chapter         string   `json:"chapter" yaml:"chapter"`
	StatusCode      string   `json:"status_code" yaml:"status_code"`
	RequiredFields  []string `json:"required_fields" yaml:"required_fields"`
	TrusteeTracking bool     `json:"trustee_tracking" yaml:"trustee_tracking"`
	CRRGSection     string   `json:"crrg_section" yaml:"crrg_section"`
}

// NormalizeStatusCode canonicalizes a raw status code value: trims whitespace
// and zero-pads single-digit codes to two characters ("5" -> "05").
func NormalizeStatusCode(raw string) string {
	code := strings.TrimSpace(raw)
	if len(code) == 1 {
		code = "0" + code
	}
	return code
}

// NormalizeCommentCode canonicalizes a special comment code (trim + upper-case).
func NormalizeCommentCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeConditionCode canonicalizes a compliance condition code (trim + upper-case).
func NormalizeConditionCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeRatingCode canonicalizes a single payment history rating code.
// A blank rating is a valid code and stays blank.
func NormalizeRatingCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
