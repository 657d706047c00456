package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/credlogic/metro2/internal/datetime"
)

// StatusChange is one snapshot from an account's reporting history.
type StatusChange struct {
	Date   *time.Time `json:"date,omitempty"`
	Status string     `json:"status,omitempty"`
	DOFD   *time.Time `json:"dofd,omitempty"`
}

// Account is one tradeline as extracted from a credit report. Extraction
// output is loosely keyed, so all canonicalization (synonym keys, date
// parsing, truthy flags) happens once in AccountFromMap; validators only see
// this typed record.
type Account struct {
	CreditorName  string `json:"creditor_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountType   string `json:"account_type,omitempty"`

	AccountStatus        string   `json:"account_status,omitempty"`
	PaymentHistory       string   `json:"payment_history,omitempty"`
	SpecialComments      []string `json:"special_comments,omitempty"`
	ComplianceConditions []string `json:"compliance_conditions,omitempty"`

	DOFD                   *time.Time `json:"date_of_first_delinquency,omitempty"`
	DateOpened             *time.Time `json:"date_opened,omitempty"`
	OriginalCreditorDOFD   *time.Time `json:"original_creditor_dofd,omitempty"`
	ComplianceEndDate      *time.Time `json:"compliance_end_date,omitempty"`
	ConditionEffectiveDate *time.Time `json:"condition_effective_date,omitempty"`
	BankruptcyFilingDate   *time.Time `json:"bankruptcy_filing_date,omitempty"`

	IsCollection       bool `json:"is_collection,omitempty"`
	IsSold             bool `json:"is_sold,omitempty"`
	IsMilitary         bool `json:"is_military,omitempty"`
	IsActiveDuty       bool `json:"is_active_duty,omitempty"`
	SCRABenefits       bool `json:"scra_benefits,omitempty"`
	IsForbearance      bool `json:"is_forbearance,omitempty"`
	IsDisasterAffected bool `json:"is_disaster_affected,omitempty"`
	IsDisputed         bool `json:"is_disputed,omitempty"`
	IsIdentityTheft    bool `json:"is_identity_theft,omitempty"`
	IsClosedByConsumer bool `json:"is_closed_by_consumer,omitempty"`
	IsAuthorizedUser   bool `json:"is_authorized_user,omitempty"`

	ForbearanceType        string `json:"forbearance_type,omitempty"`
	ECOACode               string `json:"ecoa_code,omitempty"`
	BankruptcyCaseNumber   string `json:"bankruptcy_case_number,omitempty"`
	CourtLocation          string `json:"court_location,omitempty"`
	TrusteePaymentTracking bool   `json:"trustee_payment_tracking,omitempty"`

	StatusChanges []StatusChange `json:"status_changes,omitempty"`

	// Raw preserves the original record so presence checks can see fields
	// that have no typed counterpart (date_reported, current_balance, ...).
	Raw map[string]interface{} `json:"-"`
}

// fieldSynonyms maps a canonical field name to the keys extraction may use.
var fieldSynonyms = map[string][]string{
	"account_status":            {"account_status", "status_code"},
	"payment_history":           {"payment_history", "payment_pattern"},
	"special_comments":          {"special_comments", "remarks"},
	"date_of_first_delinquency": {"date_of_first_delinquency", "dofd"},
	"creditor_name":             {"creditor_name", "account_name"},
}

// AccountFromMap canonicalizes one raw extracted record into an Account.
func AccountFromMap(m map[string]interface{}) *Account {
	a := &Account{Raw: m}

	a.CreditorName = stringField(m, "creditor_name")
	a.AccountNumber = stringField(m, "account_number")
	a.AccountType = stringField(m, "account_type")
	a.AccountStatus = stringField(m, "account_status")
	a.PaymentHistory = stringField(m, "payment_history")
	a.SpecialComments = listField(m, "special_comments")
	a.ComplianceConditions = listField(m, "compliance_conditions")

	a.DOFD = dateField(m, "date_of_first_delinquency")
	a.DateOpened = dateField(m, "date_opened")
	a.OriginalCreditorDOFD = dateField(m, "original_creditor_dofd")
	a.ComplianceEndDate = dateField(m, "compliance_end_date")
	a.ConditionEffectiveDate = dateField(m, "condition_effective_date")
	a.BankruptcyFilingDate = dateField(m, "bankruptcy_filing_date")

	a.IsCollection = truthy(lookup(m, "is_collection"))
	a.IsSold = truthy(lookup(m, "is_sold"))
	a.IsMilitary = truthy(lookup(m, "is_military"))
	a.IsActiveDuty = truthy(lookup(m, "is_active_duty"))
	a.SCRABenefits = truthy(lookup(m, "scra_benefits"))
	a.IsForbearance = truthy(lookup(m, "is_forbearance"))
	a.IsDisasterAffected = truthy(lookup(m, "is_disaster_affected"))
	a.IsDisputed = truthy(lookup(m, "is_disputed"))
	a.IsIdentityTheft = truthy(lookup(m, "is_identity_theft"))
	a.IsClosedByConsumer = truthy(lookup(m, "is_closed_by_consumer"))
	a.IsAuthorizedUser = truthy(lookup(m, "is_authorized_user"))

	a.ForbearanceType = stringField(m, "forbearance_type")
	a.ECOACode = stringField(m, "ecoa_code")
	a.BankruptcyCaseNumber = stringField(m, "bankruptcy_case_number")
	a.CourtLocation = stringField(m, "court_location")
	a.TrusteePaymentTracking = truthy(lookup(m, "trustee_payment_tracking"))

	if raw, ok := lookup(m, "status_changes").([]interface{}); ok {
		for _, entry := range raw {
			change, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			sc := StatusChange{Status: stringField(change, "account_status")}
			if sc.Status == "" {
				sc.Status = stringField(change, "status")
			}
			if d, ok := datetime.Normalize(lookup(change, "date")); ok {
				sc.Date = &d
			}
			if d, ok := datetime.Normalize(lookup(change, "date_of_first_delinquency")); ok {
				sc.DOFD = &d
			}
			a.StatusChanges = append(a.StatusChanges, sc)
		}
	}

	return a
}

// FieldPresent reports whether the named field carries a non-blank value,
// checking typed fields first and falling back to the raw record.
func (a *Account) FieldPresent(name string) bool {
	switch name {
	case "creditor_name":
		if a.CreditorName != "" {
			return true
		}
	case "account_number":
		if a.AccountNumber != "" {
			return true
		}
	case "account_type":
		if a.AccountType != "" {
			return true
		}
	case "account_status":
		if a.AccountStatus != "" {
			return true
		}
	case "payment_history":
		if a.PaymentHistory != "" {
			return true
		}
	case "date_of_first_delinquency":
		if a.DOFD != nil {
			return true
		}
	case "date_opened":
		if a.DateOpened != nil {
			return true
		}
	case "original_creditor_dofd":
		if a.OriginalCreditorDOFD != nil {
			return true
		}
	case "bankruptcy_filing_date":
		if a.BankruptcyFilingDate != nil {
			return true
		}
	case "bankruptcy_case_number":
		if a.BankruptcyCaseNumber != "" {
			return true
		}
	case "court_location":
		if a.CourtLocation != "" {
			return true
		}
	case "forbearance_type":
		if a.ForbearanceType != "" {
			return true
		}
	case "ecoa_code":
		if a.ECOACode != "" {
			return true
		}
	}
	if a.Raw == nil {
		return false
	}
	for _, key := range synonyms(name) {
		if v, ok := a.Raw[key]; ok && present(v) {
			return true
		}
	}
	return false
}

// DisplayName returns the creditor name or a positional fallback for report
// tagging.
func (a *Account) DisplayName(index int) string {
	if a.CreditorName != "" {
		return a.CreditorName
	}
	return fmt.Sprintf("Account %d", index+1)
}

// DisplayNumber returns the account number or "Unknown".
func (a *Account) DisplayNumber() string {
	if a.AccountNumber != "" {
		return a.AccountNumber
	}
	return "Unknown"
}

func synonyms(name string) []string {
	if keys, ok := fieldSynonyms[name]; ok {
		return keys
	}
	return []string{name}
}

func lookup(m map[string]interface{}, name string) interface{} {
	for _, key := range synonyms(name) {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(m map[string]interface{}, name string) string {
	switch v := lookup(m, name).(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	case int, int64, float64:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	default:
		return ""
	}
}

func listField(m map[string]interface{}, name string) []string {
	var out []string
	switch v := lookup(m, name).(type) {
	case []string:
		out = append(out, v...)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) != "" {
				out = append(out, strings.TrimSpace(part))
			}
		}
	}
	return out
}

func dateField(m map[string]interface{}, name string) *time.Time {
	if d, ok := datetime.Normalize(lookup(m, name)); ok {
		return &d
	}
	return nil
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes", "y", "1":
			return true
		}
		return false
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	default:
		return false
	}
}

func present(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}
