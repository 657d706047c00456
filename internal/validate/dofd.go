package validate

import (
	"fmt"
	"sort"
	"time"

	"github.com/credlogic/metro2/internal/metro2"
	"github.com/credlogic/metro2/internal/model"
)

// DOFDFieldName is the Metro 2 field identifier for the Date of First
// Delinquency.
const DOFDFieldName = "Date of First Delinquency (Field 25)"

// reportingWindowDays is the FCRA obsolescence window: seven years plus the
// 180-day grace period. Deliberately the fixed-day approximation, not
// calendar year arithmetic; changing it would shift flagging at the boundary.
const reportingWindowDays = 7*365 + 180

// ValidateDOFDHierarchy runs the anti-re-aging and obsolescence checks over
// an account's Date of First Delinquency and its status change history. The
// checks are independent of each other.
func (v *Validator) ValidateDOFDHierarchy(dofd *time.Time, changes []model.StatusChange, account *model.Account) *model.DOFDResult {
	result := &model.DOFDResult{}
	today := v.today()

	status := ""
	if account != nil {
		status = model.NormalizeStatusCode(account.AccountStatus)
	}

	// Check 1: derogatory status with no DOFD at all.
	if dofd == nil && account != nil && metro2.IsDerogatoryStatus(status) {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryDOFD,
			Kind:              model.ReasonMissingField,
			Field:             DOFDFieldName,
			Issue:             fmt.Sprintf("Account status %s is derogatory but no date of first delinquency is reported", status),
			CRRGReference:     "FCRA §623(a)(6)",
			RecommendedAction: "Report the date the account first became delinquent",
			Severity:          model.SeverityHigh,
		})
	}

	// Check 2: collection or sold account must preserve the original
	// creditor's DOFD. An earlier DOFD is tolerated; only moving it later
	// extends the reporting period.
	if dofd != nil && account != nil && account.OriginalCreditorDOFD != nil {
		collectionOrSold := account.IsCollection || account.IsSold || status == "80" || status == "94"
		orig := *account.OriginalCreditorDOFD
		if collectionOrSold && !dofd.Equal(orig) && dofd.After(orig) {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryDOFD,
				Kind:              model.ReasonReAging,
				Field:             DOFDFieldName,
				Issue:             fmt.Sprintf("Possible re-aging: reported DOFD %s is later than the original creditor's DOFD %s", dofd.Format("2006-01-02"), orig.Format("2006-01-02")),
				CRRGReference:     "FCRA §605(c)",
				RecommendedAction: "Restore the original creditor's date of first delinquency",
				Severity:          model.SeverityHigh,
			})
		}
	}

	// Check 3: DOFD past the 7-year + 180-day reporting limit.
	if dofd != nil {
		expiry := dofd.AddDate(0, 0, reportingWindowDays)
		if expiry.Before(today) {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryDOFD,
				Kind:              model.ReasonObsolete,
				Field:             DOFDFieldName,
				Issue:             fmt.Sprintf("DOFD %s is past the 7-year reporting limit; the item became obsolete on %s", dofd.Format("2006-01-02"), expiry.Format("2006-01-02")),
				CRRGReference:     "FCRA §605(a)",
				RecommendedAction: "Delete the tradeline; it is no longer reportable",
				Severity:          model.SeverityHigh,
			})
		}

		within := !expiry.Before(today)
		days := int(expiry.Sub(today).Hours() / 24)
		d := *dofd
		result.DOFD = &d
		result.WithinReportingPeriod = &within
		result.DaysUntilExpiration = &days
	}

	// Check 4: DOFD before the account was opened.
	if dofd != nil && account != nil && account.DateOpened != nil && dofd.Before(*account.DateOpened) {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryDOFD,
			Kind:              model.ReasonChronology,
			Field:             DOFDFieldName,
			Issue:             fmt.Sprintf("DOFD %s precedes the account open date %s", dofd.Format("2006-01-02"), account.DateOpened.Format("2006-01-02")),
			CRRGReference:     "CRRG 2025, Field 25",
			RecommendedAction: "Correct the DOFD or the date opened; a delinquency cannot predate the account",
			Severity:          model.SeverityHigh,
		})
	}

	// Check 5: DOFD in the future.
	if dofd != nil && dofd.After(today) {
		result.Violations = append(result.Violations, model.Violation{
			Category:          model.CategoryDOFD,
			Kind:              model.ReasonFutureDate,
			Field:             DOFDFieldName,
			Issue:             fmt.Sprintf("DOFD %s is in the future", dofd.Format("2006-01-02")),
			CRRGReference:     "CRRG 2025, Field 25",
			RecommendedAction: "Correct the date of first delinquency",
			Severity:          model.SeverityHigh,
		})
	}

	// Check 6: scan the status change history for a DOFD that moved later.
	// The previous-DOFD tracker only advances on events that carry a DOFD;
	// events without one do not reset it.
	sorted := make([]model.StatusChange, len(changes))
	copy(sorted, changes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})

	var prev *time.Time
	for _, change := range sorted {
		if change.DOFD == nil {
			continue
		}
		if prev != nil && change.DOFD.After(*prev) {
			result.Violations = append(result.Violations, model.Violation{
				Category:          model.CategoryDOFD,
				Kind:              model.ReasonReAging,
				Field:             DOFDFieldName,
				Issue:             fmt.Sprintf("Re-aging detected: DOFD moved from %s to %s across status changes", prev.Format("2006-01-02"), change.DOFD.Format("2006-01-02")),
				CRRGReference:     "FCRA §605(c)",
				RecommendedAction: "Restore the earliest established date of first delinquency",
				Severity:          model.SeverityHigh,
			})
		}
		prev = change.DOFD
	}

	result.Finalize()
	return result
}
