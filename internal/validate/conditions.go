package validate

import (
	"fmt"
	"strings"

	"github.com/credlogic/metro2/internal/metro2"
	"github.com/credlogic/metro2/internal/model"
)

// ValidateComplianceConditions checks the XA-XR compliance condition codes
// reported for an account.
func (v *Validator) ValidateComplianceConditions(conditions []string, account *model.Account) *model.ConditionsResult {
	result := &model.ConditionsResult{}

	present := map[string]bool{}
	for _, raw := range conditions {
		code := model.NormalizeConditionCode(raw)
		if code == "" {
			continue
		}
		info, ok := metro2.GetComplianceConditionInfo(code)
		if !ok {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryComplianceConditions,
				Kind:              model.ReasonInvalidCode,
				Code:              code,
				Field:             metro2.ConditionFieldName,
				Issue:             fmt.Sprintf("Unrecognized compliance condition code %q", code),
				CRRGReference:     "CRRG 2025, Field 20",
				RecommendedAction: "Remove or correct the compliance condition code",
				Severity:          model.SeverityMedium,
			})
			continue
		}
		present[code] = true
		result.Details = append(result.Details, model.ConditionDetail{Code: code, Info: info})
		if info.Enhanced2025 {
			result.Has2025Enhanced = true
		}
		if info.SCRAProtected {
			result.HasSCRAProtected = true
		}
	}

	if account != nil {
		if account.IsActiveDuty && !present["XJ"] {
			result.Violations = append(result.Violations, missingConditionViolation(
				"Account holder is on active duty but condition code XJ is not reported",
				"Report condition code XJ for active duty servicemembers"))
		}
		if account.SCRABenefits && !present["XK"] {
			result.Violations = append(result.Violations, missingConditionViolation(
				"Account has SCRA benefits but condition code XK is not reported",
				"Report condition code XK while the SCRA interest rate benefit is active"))
		}
		if account.IsForbearance && !anyPresent(present, metro2.ForbearanceConditionCodes()) {
			result.Violations = append(result.Violations, missingConditionViolation(
				fmt.Sprintf("Account is in forbearance but no forbearance condition code (%s) is reported", strings.Join(metro2.ForbearanceConditionCodes(), ", ")),
				"Report the forbearance condition code matching the relief program"))
		}
		if account.IsDisasterAffected && !anyPresent(present, metro2.DisasterConditionCodes()) {
			result.Violations = append(result.Violations, missingConditionViolation(
				fmt.Sprintf("Account is disaster-affected but no disaster condition code (%s) is reported", strings.Join(metro2.DisasterConditionCodes(), ", ")),
				"Report the disaster condition code matching the relief arrangement"))
		}

		// Conditions with a relief window need a compliance end date.
		for _, detail := range result.Details {
			if detail.Info.RequiresEndDate && account.ComplianceEndDate == nil {
				result.Violations = append(result.Violations, model.Violation{
					Category:          model.CategoryComplianceConditions,
					Kind:              model.ReasonMissingField,
					Code:              detail.Code,
					Field:             "compliance_end_date",
					Issue:             fmt.Sprintf("Condition code %s (%s) requires a compliance end date but none is reported", detail.Code, detail.Info.Description),
					CRRGReference:     detail.Info.CRRGSection,
					RecommendedAction: "Report the date the relief arrangement ends",
					Severity:          model.SeverityMedium,
				})
			}
		}
	}

	result.Finalize()
	return result
}

func missingConditionViolation(issue, action string) model.Violation {
	return model.Violation{
		Category:          model.CategoryComplianceConditions,
		Kind:              model.ReasonMissingCode,
		Field:             metro2.ConditionFieldName,
		Issue:             issue,
		CRRGReference:     "CRRG 2025, Field 20",
		RecommendedAction: action,
		Severity:          model.SeverityHigh,
	}
}
