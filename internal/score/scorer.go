// Package score aggregates per-account validation results into a single
// compliance report with a transparent 0-100 score.
package score

import (
	"math"
	"time"

	"github.com/credlogic/metro2/internal/model"
	"github.com/credlogic/metro2/internal/validate"
)

// Penalty weights per violation severity, and the per-account budget the
// penalty is normalized against.
const (
	penaltyHigh       = 10
	penaltyMedium     = 5
	penaltyLow        = 2
	maxPenaltyPerAcct = 30
)

// Scorer runs the full validation over account batches.
type Scorer struct {
	validator *validate.Validator
}

// NewScorer creates a scorer with a default validator.
func NewScorer() *Scorer {
	return &Scorer{validator: validate.NewValidator()}
}

// NewScorerWith creates a scorer around an existing validator (used by tests
// that pin the clock).
func NewScorerWith(v *validate.Validator) *Scorer {
	return &Scorer{validator: v}
}

// RunFullValidation is the batch entry point: validates every account and
// folds the results into one compliance report.
func RunFullValidation(accounts []*model.Account) *model.ComplianceReport {
	return NewScorer().Aggregate(accounts)
}

// Aggregate dispatches each account to the six field validators in fixed
// order, tags every violation with the originating account, and computes the
// compliance score. Separate calls share no state.
func (s *Scorer) Aggregate(accounts []*model.Account) *model.ComplianceReport {
	report := &model.ComplianceReport{
		GeneratedAt:      time.Now().UTC(),
		Violations:       []model.Violation{},
		IssuesByCategory: map[model.Category]int{},
	}
	for _, category := range model.Categories() {
		report.IssuesByCategory[category] = 0
	}
	report.Summary.TotalAccounts = len(accounts)

	for i, account := range accounts {
		name := account.DisplayName(i)
		number := account.DisplayNumber()

		violations := s.validator.ValidateAccount(account)
		if len(violations) > 0 {
			report.Summary.AccountsWithIssues++
		}
		for _, violation := range violations {
			violation.AccountName = name
			violation.AccountNumber = number
			report.Violations = append(report.Violations, violation)
			report.IssuesByCategory[violation.Category]++
			report.Summary.CountBySeverity(violation.Severity)
		}
	}

	report.ComplianceScore = complianceScore(report.Summary)
	report.Compliant2025 = report.IssuesByCategory[model.Category2025Requirements] == 0 &&
		report.Summary.HighSeverity == 0
	return report
}

// complianceScore maps the severity tallies to 0-100. The score is
// monotonically non-increasing in violation count and severity and saturates
// at both ends; an empty batch passes vacuously.
func complianceScore(summary model.ReportSummary) int {
	if summary.TotalAccounts == 0 {
		return 100
	}
	penalty := penaltyHigh*summary.HighSeverity +
		penaltyMedium*summary.MediumSeverity +
		penaltyLow*summary.LowSeverity
	maxPenalty := maxPenaltyPerAcct * summary.TotalAccounts

	ratio := float64(penalty) / float64(maxPenalty)
	if ratio > 1 {
		ratio = 1
	}
	score := int(math.Round(100 * (1 - ratio)))
	if score < 0 {
		score = 0
	}
	return score
}
