package metro2

import "github.com/credlogic/metro2/internal/model"

// GetAccountStatusInfo looks up a status code after canonicalization.
func GetAccountStatusInfo(code string) (model.StatusCode, bool) {
	info, ok := accountStatusCodes[model.NormalizeStatusCode(code)]
	return info, ok
}

// GetPaymentRatingInfo looks up a payment rating code.
func GetPaymentRatingInfo(code string) (model.PaymentRating, bool) {
	info, ok := paymentRatingCodes[model.NormalizeRatingCode(code)]
	return info, ok
}

// GetSpecialCommentInfo looks up a special comment code.
func GetSpecialCommentInfo(code string) (model.SpecialComment, bool) {
	info, ok := specialCommentCodes[model.NormalizeCommentCode(code)]
	return info, ok
}

// GetComplianceConditionInfo looks up a compliance condition code.
func GetComplianceConditionInfo(code string) (model.ComplianceCondition, bool) {
	info, ok := complianceConditionCodes[model.NormalizeConditionCode(code)]
	return info, ok
}

// IsDerogatoryStatus reports whether a status code carries derogatory history.
// Unrecognized codes are not derogatory.
func IsDerogatoryStatus(code string) bool {
	info, ok := GetAccountStatusInfo(code)
	return ok && info.IsDerogatory
}

// RequiresDOFD reports whether a status code requires a Date of First
// Delinquency.
func RequiresDOFD(code string) bool {
	info, ok := GetAccountStatusInfo(code)
	return ok && info.RequiresDOFD
}

// BankruptcyChapter returns the chapter for a bankruptcy status code.
func BankruptcyChapter(code string) (string, bool) {
	chapter, ok := bankruptcyStatusCodes[model.NormalizeStatusCode(code)]
	return chapter, ok
}

// AllowedRatings returns the payment rating codes compatible with the most
// recent history position for the given status code.
func AllowedRatings(status string) []string {
	ratings, ok := statusPaymentCompatibility[model.NormalizeStatusCode(status)]
	if !ok {
		return nil
	}
	out := make([]string, len(ratings))
	copy(out, ratings)
	return out
}

// AllStatusCodes returns a copy of the status code table.
func AllStatusCodes() map[string]model.StatusCode {
	out := make(map[string]model.StatusCode, len(accountStatusCodes))
	for code, info := range accountStatusCodes {
		out[code] = info
	}
	return out
}

// AllPaymentCodes returns a copy of the payment rating table.
func AllPaymentCodes() map[string]model.PaymentRating {
	out := make(map[string]model.PaymentRating, len(paymentRatingCodes))
	for code, info := range paymentRatingCodes {
		out[code] = info
	}
	return out
}

// AllSpecialComments returns a copy of the special comment table.
func AllSpecialComments() map[string]model.SpecialComment {
	out := make(map[string]model.SpecialComment, len(specialCommentCodes))
	for code, info := range specialCommentCodes {
		out[code] = info
	}
	return out
}

// AllComplianceConditions returns a copy of the compliance condition table.
func AllComplianceConditions() map[string]model.ComplianceCondition {
	out := make(map[string]model.ComplianceCondition, len(complianceConditionCodes))
	for code, info := range complianceConditionCodes {
		out[code] = info
	}
	return out
}

// DOFDHierarchyRules returns a copy of the DOFD hierarchy documentation.
func DOFDHierarchyRules() []model.DOFDRule {
	out := make([]model.DOFDRule, len(dofdHierarchyRules))
	copy(out, dofdHierarchyRules)
	return out
}

// BankruptcyRequirements returns a copy of the per-chapter 2025 bankruptcy
// requirements keyed by status code.
func BankruptcyRequirements() map[string]model.BankruptcyRequirement {
	out := make(map[string]model.BankruptcyRequirement, len(bankruptcyRequirements))
	for code, req := range bankruptcyRequirements {
		fields := make([]string, len(req.RequiredFields))
		copy(fields, req.RequiredFields)
		req.RequiredFields = fields
		out[code] = req
	}
	return out
}

// RequiredFields returns a copy of the 2025 required-field set for a category.
func RequiredFields(category string) []string {
	fields, ok := required2025Fields[category]
	if !ok {
		return nil
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// ForbearanceConditionCodes returns the condition codes accepted for accounts
// flagged as in forbearance.
func ForbearanceConditionCodes() []string {
	out := make([]string, len(forbearanceConditionCodes))
	copy(out, forbearanceConditionCodes)
	return out
}

// DisasterConditionCodes returns the condition codes accepted for accounts
// flagged as disaster-affected.
func DisasterConditionCodes() []string {
	out := make([]string, len(disasterConditionCodes))
	copy(out, disasterConditionCodes)
	return out
}
