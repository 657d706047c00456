package validate

import (
	"fmt"

	"github.com/credlogic/metro2/internal/metro2"
	"github.com/credlogic/metro2/internal/model"
)

// dispute comment codes, any one of which satisfies a disputed account.
var disputeComments = []string{"AW", "DA", "ID"}

// ValidateSpecialComments checks the special comment codes reported for an
// account: unrecognized codes first, then the presence checks driven by the
// account's flags.
func (v *Validator) ValidateSpecialComments(comments []string, account *model.Account) *model.CommentsResult {
	result := &model.CommentsResult{}

	present := map[string]bool{}
	for _, raw := range comments {
		code := model.NormalizeCommentCode(raw)
		if code == "" {
			continue
		}
		info, ok := metro2.GetSpecialCommentInfo(code)
		if !ok {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategorySpecialComments,
				Kind:              model.ReasonInvalidCode,
				Code:              code,
				Field:             metro2.CommentFieldName,
				Issue:             fmt.Sprintf("Unrecognized special comment code %q", code),
				CRRGReference:     "CRRG 2025, Field 19",
				RecommendedAction: "Remove or correct the special comment code",
				Severity:          model.SeverityMedium,
			})
			continue
		}
		present[code] = true
		result.Details = append(result.Details, model.CommentDetail{Code: code, Info: info})
	}

	if account != nil {
		if account.IsDisputed && !anyPresent(present, disputeComments) {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategorySpecialComments,
				Kind:              model.ReasonMissingCode,
				Field:             metro2.CommentFieldName,
				Issue:             "Account is disputed but no dispute comment code (AW, DA or ID) is reported",
				CRRGReference:     "CRRG 2025, Field 19 (Disputes)",
				RecommendedAction: "Report a dispute comment code while the dispute is open",
				Severity:          model.SeverityHigh,
			})
		}
		if account.IsIdentityTheft && !present["AV"] {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategorySpecialComments,
				Kind:              model.ReasonMissingCode,
				Field:             metro2.CommentFieldName,
				Issue:             "Account is flagged for identity theft but comment code AV is not reported",
				CRRGReference:     "CRRG 2025, Field 19 (Identity Theft)",
				RecommendedAction: "Report comment code AV while the identity theft investigation is open",
				Severity:          model.SeverityHigh,
			})
		}
		closedByConsumer := account.IsClosedByConsumer || model.NormalizeStatusCode(account.AccountStatus) == "96"
		if closedByConsumer && !present["AC"] && !present["B"] {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategorySpecialComments,
				Kind:              model.ReasonMissingCode,
				Field:             metro2.CommentFieldName,
				Issue:             "Account was closed by the consumer but neither comment code AC nor B is reported",
				CRRGReference:     "CRRG 2025, Field 19 (Closures)",
				RecommendedAction: "Report comment code AC or B for consumer-closed accounts",
				Severity:          model.SeverityLow,
			})
		}
		if account.IsAuthorizedUser && !present["AU"] {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategorySpecialComments,
				Kind:              model.ReasonMissingCode,
				Field:             metro2.CommentFieldName,
				Issue:             "Account holder is an authorized user but comment code AU is not reported",
				CRRGReference:     "CRRG 2025, Field 19",
				RecommendedAction: "Report comment code AU for authorized user tradelines",
				Severity:          model.SeverityMedium,
			})
		}
	}

	result.Finalize()
	return result
}

func anyPresent(present map[string]bool, codes []string) bool {
	for _, code := range codes {
		if present[code] {
			return true
		}
	}
	return false
}
