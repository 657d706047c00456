package validate

import (
	"fmt"

	"github.com/credlogic/metro2/internal/metro2"
	"github.com/credlogic/metro2/internal/model"
)

// ValidateAccountStatus checks a raw account status code against the CRRG
// reference table. A missing or unrecognized code is itself a high-severity
// violation and short-circuits further status checks.
func (v *Validator) ValidateAccountStatus(raw string) *model.StatusResult {
	result := &model.StatusResult{}
	code := model.NormalizeStatusCode(raw)

	if code == "" {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryStatusCodes,
			Kind:              model.ReasonMissingCode,
			Field:             metro2.StatusFieldName,
			Issue:             "Account status code is missing",
			CRRGReference:     "CRRG 2025, Field 17A",
			RecommendedAction: "Report a valid account status code",
			Severity:          model.SeverityHigh,
		})
		result.Finalize()
		return result
	}

	info, ok := metro2.GetAccountStatusInfo(code)
	if !ok {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryStatusCodes,
			Kind:              model.ReasonInvalidCode,
			Code:              code,
			Field:             metro2.StatusFieldName,
			Issue:             fmt.Sprintf("Invalid account status code %q; valid codes are %s", code, metro2.ValidStatusRange),
			CRRGReference:     "CRRG 2025, Field 17A",
			RecommendedAction: "Correct the account status to a valid Metro 2 code",
			Severity:          model.SeverityHigh,
		})
		result.Finalize()
		return result
	}

	result.Info = &info
	result.IsDerogatory = info.IsDerogatory
	result.RequiresDOFD = info.RequiresDOFD
	result.Finalize()
	return result
}
