package validate

import (
	"fmt"
	"strings"

	"github.com/credlogic/metro2/internal/metro2"
	"github.com/credlogic/metro2/internal/model"
)

// derogatoryRatings are the monthly rating codes indicating delinquency.
const derogatoryRatings = "123456"

// collectionLikeStatuses are statuses where an all-current recent history is
// inconsistent with the reported status.
var collectionLikeStatuses = map[string]bool{"80": true, "82": true, "97": true}

// ValidatePaymentPattern checks a payment history string (one rating code per
// month, most recent first) against the account's status code. The rules are
// independent; a single call may emit several violations.
func (v *Validator) ValidatePaymentPattern(pattern, status string) *model.PatternResult {
	result := &model.PatternResult{}
	pattern = strings.ToUpper(pattern)
	statusCode := model.NormalizeStatusCode(status)
	statusInfo, statusKnown := metro2.GetAccountStatusInfo(statusCode)

	// Rule 1: derogatory status with no history at all.
	if pattern == "" && statusKnown && statusInfo.IsDerogatory {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryPaymentPatterns,
			Kind:              model.ReasonMissingField,
			Field:             metro2.PatternFieldName,
			Issue:             fmt.Sprintf("Status %s (%s) is derogatory but no payment history is reported", statusCode, statusInfo.Description),
			CRRGReference:     "CRRG 2025, Field 18",
			RecommendedAction: "Report the payment history profile supporting the derogatory status",
			Severity:          model.SeverityMedium,
		})
	}

	// Rule 2: invalid rating codes, every offending position listed. Positions
	// are counted in characters, not bytes, so they stay month-accurate even
	// when garbled input carries multi-byte characters.
	var invalid []string
	pos := 0
	for _, ch := range pattern {
		pos++
		code := string(ch)
		if ch == ' ' {
			code = ""
		}
		if _, ok := metro2.GetPaymentRatingInfo(code); !ok {
			invalid = append(invalid, fmt.Sprintf("position %d: %q", pos, string(ch)))
		}
	}
	if len(invalid) > 0 {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryPaymentPatterns,
			Kind:              model.ReasonInvalidCode,
			Field:             metro2.PatternFieldName,
			Issue:             "Invalid payment rating codes in history: " + strings.Join(invalid, ", "),
			CRRGReference:     "CRRG 2025, Field 18",
			RecommendedAction: "Replace invalid codes with valid ratings (0-6, B, D, E or blank)",
			Severity:          model.SeverityHigh,
		})
	}

	// Rule 3: the most recent rating must be compatible with the status.
	if pattern != "" && statusKnown {
		mostRecent := ratingAt(pattern, 0)
		if allowed := metro2.AllowedRatings(statusCode); allowed != nil && !containsString(allowed, mostRecent) {
			ratingInfo, _ := metro2.GetPaymentRatingInfo(mostRecent)
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryPaymentPatterns,
				Kind:              model.ReasonInconsistent,
				Code:              mostRecent,
				Field:             metro2.PatternFieldName,
				Issue:             fmt.Sprintf("Most recent payment rating %q (%s) is not compatible with account status %s (%s)", mostRecent, ratingInfo.Description, statusCode, statusInfo.Description),
				CRRGReference:     "CRRG 2025, Fields 17A/18",
				RecommendedAction: "Align the most recent payment rating with the reported account status",
				Severity:          model.SeverityHigh,
			})
		}
	}

	// Rule 4: current status but derogatory ratings in the last 12 months.
	if statusCode == "11" {
		window := pattern
		if len(window) > 12 {
			window = window[:12]
		}
		if strings.ContainsAny(window, derogatoryRatings) {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryPaymentPatterns,
				Kind:              model.ReasonInconsistent,
				Field:             metro2.PatternFieldName,
				Issue:             "Account status is Current but the most recent 12 months of history contain derogatory ratings",
				CRRGReference:     "CRRG 2025, Fields 17A/18",
				RecommendedAction: "Verify the account was brought current and the history reflects it",
				Severity:          model.SeverityMedium,
			})
		}
	}

	// Rule 5: collection/chargeoff/loss status but an all-current recent history.
	if pattern != "" && collectionLikeStatuses[statusCode] {
		window := 6
		if len(pattern) < window {
			window = len(pattern)
		}
		allCurrent := true
		for i := 0; i < window; i++ {
			if !isCurrentRating(ratingAt(pattern, i)) {
				allCurrent = false
				break
			}
		}
		if allCurrent {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryPaymentPatterns,
				Kind:              model.ReasonInconsistent,
				Field:             metro2.PatternFieldName,
				Issue:             fmt.Sprintf("Account status %s (%s) is delinquent but the most recent 6 months of history are all current", statusCode, statusInfo.Description),
				CRRGReference:     "CRRG 2025, Fields 17A/18",
				RecommendedAction: "Verify the delinquent status; an all-current history contradicts it",
				Severity:          model.SeverityHigh,
			})
		}
	}

	result.Analysis = analyzePattern(pattern)
	result.Finalize()
	return result
}

// analyzePattern summarizes the history string for downstream display.
func analyzePattern(pattern string) model.PatternAnalysis {
	analysis := model.PatternAnalysis{Length: len(pattern)}
	if pattern == "" {
		return analysis
	}
	analysis.MostRecent = ratingAt(pattern, 0)

	seenSpecial := map[string]bool{}
	for i := range pattern {
		code := ratingAt(pattern, i)
		switch {
		case strings.Contains(derogatoryRatings, code) && code != "":
			analysis.DerogatoryCount++
		case isCurrentRating(code):
			analysis.CurrentCount++
		case code == "B" || code == "D":
			if !seenSpecial[code] {
				seenSpecial[code] = true
				analysis.SpecialCodes = append(analysis.SpecialCodes, code)
			}
		}
	}
	return analysis
}

// ratingAt returns the normalized rating code at a history position; a space
// is the blank rating.
func ratingAt(pattern string, i int) string {
	if i >= len(pattern) || pattern[i] == ' ' {
		return ""
	}
	return string(pattern[i])
}

func isCurrentRating(code string) bool {
	return code == "0" || code == "" || code == "E"
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
