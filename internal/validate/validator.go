// Package validate implements the Metro 2 field validators. Each check
// consumes one account record (or a sub-field) plus the reference tables and
// returns violations as data; invalid input never raises an error here.
package validate

import (
	"time"

	"github.com/credlogic/metro2/internal/model"
)

// Validator runs the CRRG 2025 field checks. It is stateless across calls and
// safe for concurrent use.
type Validator struct {
	now func() time.Time // injectable for tests
}

// NewValidator creates a validator using the system clock.
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt creates a validator with a fixed clock. Intended for tests
// exercising the reporting-window arithmetic.
func NewValidatorAt(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// today returns the clock truncated to a whole date in UTC.
func (v *Validator) today() time.Time {
	t := v.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateAccount runs all six checks over one account in fixed order and
// returns the combined violations. Per-check derived data is discarded;
// callers needing it invoke the individual checks.
func (v *Validator) ValidateAccount(account *model.Account) []model.Violation {
	var violations []model.Violation

	status := v.ValidateAccountStatus(account.AccountStatus)
	violations = append(violations, status.Violations...)

	pattern := v.ValidatePaymentPattern(account.PaymentHistory, account.AccountStatus)
	violations = append(violations, pattern.Violations...)

	comments := v.ValidateSpecialComments(account.SpecialComments, account)
	violations = append(violations, comments.Violations...)

	conditions := v.ValidateComplianceConditions(account.ComplianceConditions, account)
	violations = append(violations, conditions.Violations...)

	dofd := v.ValidateDOFDHierarchy(account.DOFD, account.StatusChanges, account)
	violations = append(violations, dofd.Violations...)

	requirements := v.Validate2025Requirements(account)
	violations = append(violations, requirements.Violations...)

	return violations
}
