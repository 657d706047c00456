package validate

import (
	"strings"
	"testing"

	"github.com/credlogic/metro2/internal/model"
)

func TestValidateAccountStatusCurrent(t *testing.T) {
	v := NewValidator()

	result := v.ValidateAccountStatus("11")
	if !result.IsValid {
		t.Errorf("Expected status 11 to be valid, got violations: %v", result.Violations)
	}
	if result.IsDerogatory {
		t.Error("Expected status 11 to not be derogatory")
	}
	if result.RequiresDOFD {
		t.Error("Expected status 11 to not require a DOFD")
	}
	if result.Info == nil || result.Info.Code != "11" {
		t.Errorf("Expected status info for code 11, got %+v", result.Info)
	}
}

func TestValidateAccountStatusMissing(t *testing.T) {
	v := NewValidator()

	result := v.ValidateAccountStatus("")
	if result.IsValid {
		t.Error("Expected a missing status to be invalid")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}

	violation := result.Violations[0]
	if violation.Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", violation.Severity)
	}
	if violation.Kind != model.ReasonMissingCode {
		t.Errorf("Expected kind %s, got %s", model.ReasonMissingCode, violation.Kind)
	}
	if violation.Field != "Account Status (Field 17A)" {
		t.Errorf("Expected field name 'Account Status (Field 17A)', got %q", violation.Field)
	}
}

func TestValidateAccountStatusUnrecognized(t *testing.T) {
	v := NewValidator()

	result := v.ValidateAccountStatus("99")
	if result.IsValid {
		t.Error("Expected status 99 to be invalid")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}

	violation := result.Violations[0]
	if violation.Kind != model.ReasonInvalidCode {
		t.Errorf("Expected kind %s, got %s", model.ReasonInvalidCode, violation.Kind)
	}
	if violation.Code != "99" {
		t.Errorf("Expected code 99 on the violation, got %q", violation.Code)
	}
	if !strings.Contains(violation.Issue, "05, 11, 13, 61-97") {
		t.Errorf("Expected the issue to cite the valid range, got %q", violation.Issue)
	}
}

func TestValidateAccountStatusZeroPadded(t *testing.T) {
	v := NewValidator()

	result := v.ValidateAccountStatus("5")
	if !result.IsValid {
		t.Errorf("Expected single-digit 5 to normalize to 05, got violations: %v", result.Violations)
	}
	if result.Info == nil || result.Info.Code != "05" {
		t.Errorf("Expected normalized code 05, got %+v", result.Info)
	}
}

func TestValidateAccountStatusDerogatory(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		code         string
		derogatory   bool
		requiresDOFD bool
	}{
		{"11", false, false},
		{"13", false, false},
		{"71", true, true},
		{"80", true, true},
		{"82", true, true},
		{"93", true, true},
		{"94", false, false},
		{"96", false, false},
		{"97", true, true},
	}

	for _, tt := range tests {
		result := v.ValidateAccountStatus(tt.code)
		if !result.IsValid {
			t.Errorf("Expected status %s to be recognized, got violations: %v", tt.code, result.Violations)
			continue
		}
		if result.IsDerogatory != tt.derogatory {
			t.Errorf("Status %s: expected derogatory=%t, got %t", tt.code, tt.derogatory, result.IsDerogatory)
		}
		if result.RequiresDOFD != tt.requiresDOFD {
			t.Errorf("Status %s: expected requiresDOFD=%t, got %t", tt.code, tt.requiresDOFD, result.RequiresDOFD)
		}
	}
}
