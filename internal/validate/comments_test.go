package validate

import (
	"testing"

	"github.com/credlogic/metro2/internal/model"
)

func TestValidateSpecialCommentsRecognized(t *testing.T) {
	v := NewValidator()

	result := v.ValidateSpecialComments([]string{"AC", "AU"}, &model.Account{})
	if !result.IsValid {
		t.Errorf("Expected recognized comment codes to be valid, got violations: %v", result.Violations)
	}
	if len(result.Details) != 2 {
		t.Errorf("Expected 2 comment details, got %d", len(result.Details))
	}
}

func TestValidateSpecialCommentsUnrecognized(t *testing.T) {
	v := NewValidator()

	result := v.ValidateSpecialComments([]string{"ZZ", "QQ"}, &model.Account{})
	if result.IsValid {
		t.Error("Expected unrecognized comment codes to produce violations")
	}
	if len(result.Violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(result.Violations))
	}
	for _, violation := range result.Violations {
		if violation.Kind != model.ReasonInvalidCode {
			t.Errorf("Expected kind %s, got %s", model.ReasonInvalidCode, violation.Kind)
		}
		if violation.Severity != model.SeverityMedium {
			t.Errorf("Expected medium severity, got %s", violation.Severity)
		}
	}
}

func TestValidateSpecialCommentsDisputeMissing(t *testing.T) {
	v := NewValidator()

	account := &model.Account{IsDisputed: true}
	result := v.ValidateSpecialComments(nil, account)
	if result.IsValid {
		t.Error("Expected a disputed account without a dispute code to produce a violation")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", result.Violations[0].Severity)
	}
}

func TestValidateSpecialCommentsDisputeSatisfied(t *testing.T) {
	v := NewValidator()

	// Any one of AW, DA or ID satisfies the dispute requirement.
	for _, code := range []string{"AW", "DA", "ID"} {
		account := &model.Account{IsDisputed: true}
		result := v.ValidateSpecialComments([]string{code}, account)
		if !result.IsValid {
			t.Errorf("Expected code %s to satisfy the dispute requirement, got violations: %v", code, result.Violations)
		}
	}
}

func TestValidateSpecialCommentsIdentityTheft(t *testing.T) {
	v := NewValidator()

	account := &model.Account{IsIdentityTheft: true}
	result := v.ValidateSpecialComments(nil, account)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", result.Violations[0].Severity)
	}

	result = v.ValidateSpecialComments([]string{"AV"}, account)
	if !result.IsValid {
		t.Errorf("Expected AV to satisfy the identity theft requirement, got violations: %v", result.Violations)
	}
}

func TestValidateSpecialCommentsClosedByConsumer(t *testing.T) {
	v := NewValidator()

	// Status 96 implies consumer closure even without the flag.
	account := &model.Account{AccountStatus: "96"}
	result := v.ValidateSpecialComments(nil, account)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Severity != model.SeverityLow {
		t.Errorf("Expected low severity, got %s", result.Violations[0].Severity)
	}

	for _, code := range []string{"AC", "B"} {
		result = v.ValidateSpecialComments([]string{code}, account)
		if !result.IsValid {
			t.Errorf("Expected code %s to satisfy the closure requirement, got violations: %v", code, result.Violations)
		}
	}
}

func TestValidateSpecialCommentsAuthorizedUser(t *testing.T) {
	v := NewValidator()

	account := &model.Account{IsAuthorizedUser: true}
	result := v.ValidateSpecialComments(nil, account)
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", result.Violations[0].Severity)
	}
}

func TestValidateSpecialCommentsLowercaseNormalized(t *testing.T) {
	v := NewValidator()

	result := v.ValidateSpecialComments([]string{" ac "}, &model.Account{})
	if !result.IsValid {
		t.Errorf("Expected ' ac ' to normalize to AC, got violations: %v", result.Violations)
	}
}
