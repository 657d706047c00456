package validate

import (
	"fmt"

	"github.com/credlogic/metro2/internal/metro2"
	"github.com/credlogic/metro2/internal/model"
)

// Validate2025Requirements checks the per-category required-field sets added
// by the 2025 CRRG updates. The all-accounts set applies unconditionally; the
// category sets apply based on the account's derived flags.
func (v *Validator) Validate2025Requirements(account *model.Account) *model.RequirementsResult {
	result := &model.RequirementsResult{}
	flagged := map[string]bool{} // each missing field is reported once

	requireFields := func(category string, severity model.Severity, citation string) {
		for _, field := range metro2.RequiredFields(category) {
			if flagged[field] || account.FieldPresent(field) {
				continue
			}
			flagged[field] = true
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.Category2025Requirements,
				Kind:              model.ReasonMissingField,
				Field:             field,
				Issue:             fmt.Sprintf("Required field %s is missing or blank (%s)", field, category),
				CRRGReference:     citation,
				RecommendedAction: fmt.Sprintf("Report a value for %s", field),
				Severity:          severity,
			})
		}
	}

	requireFields("all_accounts", model.SeverityMedium, "CRRG 2025, Required Fields")

	status := model.NormalizeStatusCode(account.AccountStatus)
	statusInfo, statusKnown := metro2.GetAccountStatusInfo(status)

	if statusKnown && statusInfo.IsDerogatory {
		requireFields("derogatory_accounts", model.SeverityHigh, "CRRG 2025, Required Fields (Derogatory)")
	}
	if account.IsCollection || status == "80" {
		requireFields("collection_accounts", model.SeverityHigh, "CRRG 2025, Required Fields (Collections)")
	}
	if req, ok := metro2.BankruptcyRequirements()[status]; ok {
		requireFields("bankruptcy_accounts", model.SeverityHigh, req.CRRGSection)
		if req.TrusteeTracking && !account.TrusteePaymentTracking {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.Category2025Requirements,
				Kind:              model.ReasonMissingField,
				Field:             "trustee_payment_tracking",
				Issue:             fmt.Sprintf("Chapter %s bankruptcy requires trustee payment tracking", req.Chapter),
				CRRGReference:     req.CRRGSection,
				RecommendedAction: "Enable trustee payment tracking for Chapter 13 accounts",
				Severity:          model.SeverityMedium,
			})
		}
	}
	if account.IsMilitary || account.IsActiveDuty {
		requireFields("military_accounts", model.SeverityHigh, "CRRG 2025, Required Fields (Military)")
	}
	if account.IsForbearance {
		requireFields("forbearance_accounts", model.SeverityHigh, "CRRG 2025, Required Fields (Forbearance)")
	}

	// 2025-enhanced conditions must carry an effective date.
	if account.ConditionEffectiveDate == nil {
		for _, raw := range account.ComplianceConditions {
			info, ok := metro2.GetComplianceConditionInfo(raw)
			if ok && info.Enhanced2025 {
				result.Violations = append(result.Violations, model.Violation{
					Category:          model.Category2025Requirements,
					Kind:              model.ReasonMissingField,
					Code:              info.Code,
					Field:             "condition_effective_date",
					Issue:             fmt.Sprintf("Condition code %s is 2025-enhanced but no condition effective date is reported", info.Code),
					CRRGReference:     info.CRRGSection,
					RecommendedAction: "Report the date the condition took effect",
					Severity:          model.SeverityMedium,
				})
				break
			}
		}
	}

	// Missing fields are carried structurally on the violations, never parsed
	// back out of issue text.
	for _, violation := range result.Violations {
		if violation.Kind == model.ReasonMissingField {
			result.MissingFields = append(result.MissingFields, violation.Field)
		}
	}

	result.Finalize()
	result.Compliant2025 = result.IsValid
	return result
}
