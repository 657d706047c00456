package validate

import (
	"strings"
	"testing"

	"github.com/credlogic/metro2/internal/model"
)

func TestValidatePaymentPatternClean(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("000000000000", "11")
	if !result.IsValid {
		t.Errorf("Expected a clean current history to be valid, got violations: %v", result.Violations)
	}
	if result.Analysis.Length != 12 {
		t.Errorf("Expected analysis length 12, got %d", result.Analysis.Length)
	}
	if result.Analysis.CurrentCount != 12 {
		t.Errorf("Expected 12 current months, got %d", result.Analysis.CurrentCount)
	}
	if result.Analysis.MostRecent != "0" {
		t.Errorf("Expected most recent rating 0, got %q", result.Analysis.MostRecent)
	}
}

func TestValidatePaymentPatternInvalidCodes(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("00X0Z0", "11")
	if result.IsValid {
		t.Error("Expected invalid rating codes to produce a violation")
	}

	var found *model.Violation
	for i := range result.Violations {
		if result.Violations[i].Kind == model.ReasonInvalidCode {
			found = &result.Violations[i]
			break
		}
	}
	if found == nil {
		t.Fatal("Expected an invalid-code violation")
	}
	if found.Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", found.Severity)
	}
	if !strings.Contains(found.Issue, `position 3: "X"`) {
		t.Errorf("Expected the issue to list position 3, got %q", found.Issue)
	}
	if !strings.Contains(found.Issue, `position 5: "Z"`) {
		t.Errorf("Expected the issue to list position 5, got %q", found.Issue)
	}
}

func TestValidatePaymentPatternMultibytePositions(t *testing.T) {
	v := NewValidator()

	// É is two bytes in UTF-8; positions must still count months, so the X
	// after it is month 4, not byte offset 5.
	result := v.ValidatePaymentPattern("0É0X", "11")

	var found *model.Violation
	for i := range result.Violations {
		if result.Violations[i].Kind == model.ReasonInvalidCode {
			found = &result.Violations[i]
			break
		}
	}
	if found == nil {
		t.Fatal("Expected an invalid-code violation")
	}
	if !strings.Contains(found.Issue, `position 2: "É"`) {
		t.Errorf("Expected the issue to list position 2, got %q", found.Issue)
	}
	if !strings.Contains(found.Issue, `position 4: "X"`) {
		t.Errorf("Expected the issue to list position 4, got %q", found.Issue)
	}
}

func TestValidatePaymentPatternCurrentStatusWithDerogatoryHistory(t *testing.T) {
	v := NewValidator()

	// Most recent month is current but months within the last 12 are not.
	result := v.ValidatePaymentPattern("000000111222", "11")
	if result.IsValid {
		t.Error("Expected derogatory history under a current status to produce a violation")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d: %v", len(result.Violations), result.Violations)
	}

	violation := result.Violations[0]
	if violation.Kind != model.ReasonInconsistent {
		t.Errorf("Expected kind %s, got %s", model.ReasonInconsistent, violation.Kind)
	}
	if violation.Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", violation.Severity)
	}
}

func TestValidatePaymentPatternOldDelinquencyTolerated(t *testing.T) {
	v := NewValidator()

	// Derogatory months beyond the 12-month window do not contradict a
	// current status.
	result := v.ValidatePaymentPattern("000000000000345", "11")
	if !result.IsValid {
		t.Errorf("Expected old delinquency outside the window to be tolerated, got violations: %v", result.Violations)
	}
}

func TestValidatePaymentPatternIncompatibleMostRecent(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("600000", "11")
	if result.IsValid {
		t.Error("Expected rating 6 under status 11 to be incompatible")
	}

	found := false
	for _, violation := range result.Violations {
		if violation.Kind == model.ReasonInconsistent && violation.Code == "6" {
			found = true
			if violation.Severity != model.SeverityHigh {
				t.Errorf("Expected high severity, got %s", violation.Severity)
			}
		}
	}
	if !found {
		t.Errorf("Expected an inconsistent violation for rating 6, got %v", result.Violations)
	}
}

func TestValidatePaymentPatternCollectionAllCurrent(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("000000", "80")
	if result.IsValid {
		t.Error("Expected an all-current history under a collection status to produce violations")
	}

	found := false
	for _, violation := range result.Violations {
		if strings.Contains(violation.Issue, "all current") {
			found = true
			if violation.Severity != model.SeverityHigh {
				t.Errorf("Expected high severity, got %s", violation.Severity)
			}
		}
	}
	if !found {
		t.Errorf("Expected an all-current contradiction violation, got %v", result.Violations)
	}
}

func TestValidatePaymentPatternMissingForDerogatoryStatus(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("", "82")
	if result.IsValid {
		t.Error("Expected a missing history under a chargeoff status to produce a violation")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Kind != model.ReasonMissingField {
		t.Errorf("Expected kind %s, got %s", model.ReasonMissingField, result.Violations[0].Kind)
	}
	if result.Violations[0].Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", result.Violations[0].Severity)
	}
}

func TestValidatePaymentPatternEmptyForCurrentStatus(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("", "11")
	if !result.IsValid {
		t.Errorf("Expected an empty history under a current status to be valid, got violations: %v", result.Violations)
	}
}

func TestValidatePaymentPatternLowercaseNormalized(t *testing.T) {
	v := NewValidator()

	result := v.ValidatePaymentPattern("b00000", "61")
	for _, violation := range result.Violations {
		if violation.Kind == model.ReasonInvalidCode {
			t.Errorf("Expected lowercase b to normalize to a valid rating, got %v", violation)
		}
	}
}

func TestAnalyzePatternSpecialCodes(t *testing.T) {
	analysis := analyzePattern("0BD0BD")
	if analysis.DerogatoryCount != 0 {
		t.Errorf("Expected 0 derogatory months, got %d", analysis.DerogatoryCount)
	}
	if analysis.CurrentCount != 2 {
		t.Errorf("Expected 2 current months, got %d", analysis.CurrentCount)
	}
	if len(analysis.SpecialCodes) != 2 {
		t.Errorf("Expected special codes B and D once each, got %v", analysis.SpecialCodes)
	}
}
