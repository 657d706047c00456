package validate

import (
	"testing"

	"github.com/credlogic/metro2/internal/datetime"
	"github.com/credlogic/metro2/internal/model"
)

// baseAccount returns an account satisfying the all-accounts required fields.
func baseAccount() *model.Account {
	opened := datetime.MustParse("2020-01-01")
	return &model.Account{
		AccountNumber: "12345678",
		AccountType:   "installment",
		AccountStatus: "11",
		DateOpened:    &opened,
		Raw: map[string]interface{}{
			"date_reported":   "2025-06-01",
			"current_balance": 1200,
			"payment_rating":  "0",
		},
	}
}

func missingFields(result *model.RequirementsResult) map[string]bool {
	fields := map[string]bool{}
	for _, field := range result.MissingFields {
		fields[field] = true
	}
	return fields
}

func TestValidate2025RequirementsCompliant(t *testing.T) {
	v := NewValidator()

	result := v.Validate2025Requirements(baseAccount())
	if !result.Compliant2025 {
		t.Errorf("Expected a fully populated account to be compliant, got violations: %v", result.Violations)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("Expected no missing fields, got %v", result.MissingFields)
	}
}

func TestValidate2025RequirementsMissingBalance(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	delete(account.Raw, "current_balance")

	result := v.Validate2025Requirements(account)
	if result.Compliant2025 {
		t.Error("Expected a missing balance to fail compliance")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d: %v", len(result.Violations), result.Violations)
	}

	violation := result.Violations[0]
	if violation.Field != "current_balance" {
		t.Errorf("Expected field current_balance, got %q", violation.Field)
	}
	if violation.Kind != model.ReasonMissingField {
		t.Errorf("Expected kind %s, got %s", model.ReasonMissingField, violation.Kind)
	}
	if violation.Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", violation.Severity)
	}
	if !missingFields(result)["current_balance"] {
		t.Errorf("Expected current_balance in MissingFields, got %v", result.MissingFields)
	}
}

func TestValidate2025RequirementsDerogatory(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	account.AccountStatus = "82"

	result := v.Validate2025Requirements(account)
	fields := missingFields(result)
	if !fields["date_of_first_delinquency"] {
		t.Errorf("Expected date_of_first_delinquency to be required, got %v", result.MissingFields)
	}
	if !fields["payment_history"] {
		t.Errorf("Expected payment_history to be required, got %v", result.MissingFields)
	}
	for _, violation := range result.Violations {
		if violation.Field == "date_of_first_delinquency" && violation.Severity != model.SeverityHigh {
			t.Errorf("Expected high severity for the DOFD requirement, got %s", violation.Severity)
		}
	}
}

func TestValidate2025RequirementsMissingFieldReportedOnce(t *testing.T) {
	v := NewValidator()

	// date_of_first_delinquency is required by both the derogatory and the
	// collection sets but must be flagged once.
	account := baseAccount()
	account.AccountStatus = "80"
	account.IsCollection = true

	result := v.Validate2025Requirements(account)
	count := 0
	for _, violation := range result.Violations {
		if violation.Field == "date_of_first_delinquency" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected date_of_first_delinquency flagged once, got %d times", count)
	}
}

func TestValidate2025RequirementsCollection(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	account.IsCollection = true
	account.PaymentHistory = "000000"
	dofd := datetime.MustParse("2024-01-01")
	account.DOFD = &dofd

	result := v.Validate2025Requirements(account)
	fields := missingFields(result)
	if !fields["original_creditor_name"] {
		t.Errorf("Expected original_creditor_name to be required, got %v", result.MissingFields)
	}
	if !fields["date_assigned"] {
		t.Errorf("Expected date_assigned to be required, got %v", result.MissingFields)
	}

	account.Raw["original_creditor_name"] = "First Bank"
	account.Raw["date_assigned"] = "2024-02-01"
	result = v.Validate2025Requirements(account)
	if len(result.Violations) != 0 {
		t.Errorf("Expected no violations after filling the collection fields, got %v", result.Violations)
	}
}

func TestValidate2025RequirementsBankruptcy(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	account.AccountStatus = "86"
	account.PaymentHistory = "000000"
	dofd := datetime.MustParse("2024-01-01")
	account.DOFD = &dofd

	result := v.Validate2025Requirements(account)
	fields := missingFields(result)
	for _, field := range []string{"bankruptcy_filing_date", "bankruptcy_case_number", "court_location"} {
		if !fields[field] {
			t.Errorf("Expected %s to be required for Chapter 13, got %v", field, result.MissingFields)
		}
	}

	trustee := false
	for _, violation := range result.Violations {
		if violation.Field == "trustee_payment_tracking" {
			trustee = true
			if violation.Severity != model.SeverityMedium {
				t.Errorf("Expected medium severity for trustee tracking, got %s", violation.Severity)
			}
		}
	}
	if !trustee {
		t.Error("Expected a trustee payment tracking violation for Chapter 13")
	}
}

func TestValidate2025RequirementsChapter7NoTrustee(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	account.AccountStatus = "83"
	account.PaymentHistory = "000000"
	dofd := datetime.MustParse("2024-01-01")
	account.DOFD = &dofd
	filed := datetime.MustParse("2024-03-01")
	account.BankruptcyFilingDate = &filed
	account.BankruptcyCaseNumber = "24-10123"
	account.CourtLocation = "SDNY"

	result := v.Validate2025Requirements(account)
	for _, violation := range result.Violations {
		if violation.Field == "trustee_payment_tracking" {
			t.Errorf("Expected no trustee tracking requirement for Chapter 7, got %v", violation)
		}
	}
}

func TestValidate2025RequirementsMilitary(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	account.IsMilitary = true

	result := v.Validate2025Requirements(account)
	if !missingFields(result)["active_duty_start_date"] {
		t.Errorf("Expected active_duty_start_date to be required, got %v", result.MissingFields)
	}

	account.Raw["active_duty_start_date"] = "2024-01-01"
	result = v.Validate2025Requirements(account)
	if len(result.Violations) != 0 {
		t.Errorf("Expected no violations after filling the military fields, got %v", result.Violations)
	}
}

func TestValidate2025RequirementsEnhancedConditionEffectiveDate(t *testing.T) {
	v := NewValidator()

	account := baseAccount()
	account.ComplianceConditions = []string{"XM", "XN"}

	result := v.Validate2025Requirements(account)
	count := 0
	for _, violation := range result.Violations {
		if violation.Field == "condition_effective_date" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected one condition effective date violation, got %d", count)
	}

	effective := datetime.MustParse("2025-01-01")
	account.ConditionEffectiveDate = &effective
	result = v.Validate2025Requirements(account)
	for _, violation := range result.Violations {
		if violation.Field == "condition_effective_date" {
			t.Errorf("Expected no violation once the effective date is set, got %v", violation)
		}
	}
}
