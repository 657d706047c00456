package metro2

import "github.com/credlogic/metro2/internal/model"

// required2025Fields lists the fields each account category must report under
// the 2025 CRRG updates. The all_accounts set applies unconditionally; the
// rest apply when the account falls into the category.
var required2025Fields = map[string][]string{
	"all_accounts": {
		"account_number",
		"account_type",
		"date_opened",
		"date_reported",
		"current_balance",
		"account_status",
		"payment_rating",
	},
	"derogatory_accounts": {
		"date_of_first_delinquency",
		"payment_history",
	},
	"collection_accounts": {
		"original_creditor_name",
		"date_of_first_delinquency",
		"date_assigned",
	},
	"bankruptcy_accounts": {
		"bankruptcy_filing_date",
		"bankruptcy_case_number",
		"court_location",
	},
	"military_accounts": {
		"active_duty_start_date",
	},
	"forbearance_accounts": {
		"forbearance_type",
		"forbearance_start_date",
	},
}

var bankruptcyRequirements = map[string]model.BankruptcyRequirement{
	"83": {Chapter: "7", StatusCode: "83", RequiredFields: []string{"bankruptcy_filing_date", "bankruptcy_case_number", "court_location"}, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 7)"},
	"84": {Chapter: "11", StatusCode: "84", RequiredFields: []string{"bankruptcy_filing_date", "bankruptcy_case_number", "court_location"}, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 11)"},
	"85": {Chapter: "12", StatusCode: "85", RequiredFields: []string{"bankruptcy_filing_date", "bankruptcy_case_number", "court_location"}, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 12)"},
	"86": {Chapter: "13", StatusCode: "86", RequiredFields: []string{"bankruptcy_filing_date", "bankruptcy_case_number", "court_location"}, TrusteeTracking: true, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 13)"},
}

// dofdHierarchyRules documents who establishes the DOFD and the preservation
// duty that follows it down the chain of furnishers.
var dofdHierarchyRules = []model.DOFDRule{
	{Priority: 1, Source: "original_creditor", Rule: "The original creditor establishes the DOFD when the account first becomes delinquent and is never subsequently brought current.", CRRGSection: "FCRA §623(a)(5)"},
	{Priority: 2, Source: "collection_agency", Rule: "A collection agency must obtain and report the original creditor's DOFD; it must not substitute the assignment date.", CRRGSection: "FCRA §623(a)(5)"},
	{Priority: 3, Source: "debt_buyer", Rule: "A debt buyer must preserve the DOFD received at sale; resetting it to extend the reporting period is re-aging.", CRRGSection: "FCRA §605(c)"},
	{Priority: 4, Source: "subsequent_furnisher", Rule: "Any subsequent furnisher reports the earliest established DOFD; a later DOFD on the same delinquency is a violation.", CRRGSection: "FCRA §605(c)"},
}
